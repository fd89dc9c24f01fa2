// Package service drives one catalog run: select program sets, fetch
// their episodes, write one feed file each, and optionally render the
// HTML overview. The run is strictly sequential.
package service

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/failsafe-go/failsafe-go/ratelimiter"

	"github.com/mbarthauer/audiothek2rss/internal/client"
	"github.com/mbarthauer/audiothek2rss/internal/config"
	"github.com/mbarthauer/audiothek2rss/internal/feed"
	"github.com/mbarthauer/audiothek2rss/internal/graphql"
	"github.com/mbarthauer/audiothek2rss/internal/index"
	"github.com/mbarthauer/audiothek2rss/internal/metrics"
	"github.com/mbarthauer/audiothek2rss/internal/models"
)

// episodeQueriesPerSecond caps how fast the episode queries hit the
// catalog. A courtesy throttle, not a correctness requirement.
const episodeQueriesPerSecond = 100

// Service runs the query-and-feed-generation pipeline.
type Service struct {
	cfg     *config.Config
	client  client.Client
	limiter ratelimiter.RateLimiter[any]
}

// New creates a Service for one run.
func New(cfg *config.Config, c client.Client) *Service {
	return &Service{
		cfg:     cfg,
		client:  c,
		limiter: ratelimiter.NewBurstyBuilder[any](episodeQueriesPerSecond, time.Second).Build(),
	}
}

// Run executes the pipeline once. Selection failures abort the run;
// per-program episode failures are logged and skipped.
func (s *Service) Run(ctx context.Context) error {
	logger := config.GetLogger()

	rssDir := filepath.Join(s.cfg.OutputDir, "rss")
	if err := os.MkdirAll(rssDir, 0o755); err != nil {
		return fmt.Errorf("create rss directory: %w", err)
	}
	htmlDir := filepath.Join(s.cfg.OutputDir, "html")
	if s.cfg.HTML {
		if err := os.MkdirAll(htmlDir, 0o755); err != nil {
			return fmt.Errorf("create html directory: %w", err)
		}
	}

	programSets, err := s.selectProgramSets(ctx)
	if err != nil {
		return err
	}

	var agg index.Aggregator
	attempted := 0
	for _, ps := range programSets {
		if s.cfg.MaxPrograms > 0 && attempted >= s.cfg.MaxPrograms {
			logger.Info().Int("maxPrograms", s.cfg.MaxPrograms).Msg("Reached the maximum number of programs")
			break
		}
		attempted++
		metrics.ProgramsProcessedTotal.Inc()

		if err := s.limiter.AcquirePermit(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		if err := s.processProgramSet(ctx, ps, rssDir, &agg); err != nil {
			logger.Warn().Err(err).Str("id", ps.ID).Str("title", ps.Title).Msg("Skipping program set")
		}
	}

	if s.cfg.HTML {
		page := index.Page{
			Groups:  agg.Groups(),
			Letters: agg.Letters(),
			Date:    time.Now().Format("2006-01-02"),
			Args:    s.cfg.Args,
		}
		if err := index.WriteFile(filepath.Join(htmlDir, "index.html"), page); err != nil {
			return err
		}
		logger.Info().Int("feeds", agg.Len()).Msg("Written HTML overview")
	}

	logger.Info().Int("attempted", attempted).Int("written", agg.Len()).Msg("Run finished")
	return nil
}

// selectProgramSets produces the definitive list of program sets to
// process. Explicit program IDs always win over category and search
// selectors.
func (s *Service) selectProgramSets(ctx context.Context) ([]*models.ProgramSet, error) {
	if len(s.cfg.ProgramIDs) > 0 {
		return s.client.ProgramSetsByIDs(ctx, s.cfg.ProgramIDs)
	}

	categories, err := s.client.Categories(ctx, s.cfg.CategoryIDs, s.cfg.CategorySearch)
	if err != nil {
		return nil, err
	}
	categoryIDs := make([]string, 0, len(categories))
	for _, category := range categories {
		categoryIDs = append(categoryIDs, category.ID)
	}

	return s.client.ProgramSets(ctx, graphql.Filter{
		CategoryIDs: categoryIDs,
		TitleSearch: s.cfg.ProgramSearch,
	}, s.cfg.Pagination)
}

// processProgramSet fetches episodes for one program set and writes its
// feed. Program sets without episodes produce no file and stay off the
// overview page.
func (s *Service) processProgramSet(ctx context.Context, ps *models.ProgramSet, rssDir string, agg *index.Aggregator) error {
	logger := config.GetLogger()

	if err := s.client.PopulateEpisodes(ctx, ps, s.cfg.Latest); err != nil {
		metrics.ProgramsSkippedTotal.WithLabelValues(metrics.ReasonQueryError).Inc()
		return err
	}

	if !ps.HasItems() {
		metrics.ProgramsSkippedTotal.WithLabelValues(metrics.ReasonEmpty).Inc()
		logger.Debug().Str("id", ps.ID).Str("title", ps.Title).Msg("Program set has no published episodes")
		return nil
	}

	id, err := ps.NumericID()
	if err != nil {
		metrics.ProgramsSkippedTotal.WithLabelValues(metrics.ReasonBadID).Inc()
		return err
	}

	filename := feed.Filename(s.cfg.Output, id)
	if err := feed.WriteFile(filepath.Join(rssDir, filename), feed.Build(ps)); err != nil {
		metrics.ProgramsSkippedTotal.WithLabelValues(metrics.ReasonWriteError).Inc()
		return err
	}

	agg.Add(path.Join("..", "rss", filename), ps.Title)
	ps.ReleaseItems()
	metrics.FeedsWrittenTotal.Inc()
	logger.Info().Int64("id", id).Str("title", ps.Title).Msg("Written feed")
	return nil
}
