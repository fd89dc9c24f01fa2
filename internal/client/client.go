package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mbarthauer/audiothek2rss/internal/config"
	"github.com/mbarthauer/audiothek2rss/internal/graphql"
	"github.com/mbarthauer/audiothek2rss/internal/metrics"
	"github.com/mbarthauer/audiothek2rss/internal/models"
)

// Client defines the interface for querying the Audiothek catalog.
type Client interface {
	// Categories resolves editorial categories by explicit IDs or by a title
	// search term. With neither selector set it returns an empty slice
	// without issuing a query.
	Categories(ctx context.Context, ids []int, search string) ([]models.Category, error)

	// ProgramSets pages through all program sets matching the filter,
	// most recently updated first, deduplicated by ID.
	ProgramSets(ctx context.Context, filter graphql.Filter, pageSize int) ([]*models.ProgramSet, error)

	// ProgramSetsByIDs fetches exactly the given program sets in one call,
	// bypassing filters and pagination.
	ProgramSetsByIDs(ctx context.Context, ids []int) ([]*models.ProgramSet, error)

	// PopulateEpisodes runs the episode query for one program set and fills
	// its Items, ImageURL and Path from the response.
	PopulateEpisodes(ctx context.Context, ps *models.ProgramSet, latest int) error
}

// client implements the Client interface.
type client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
}

// NewClient creates a new catalog client from the run configuration.
func NewClient(cfg *config.Config) Client {
	// Parse timeout duration
	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve its settings (timeouts, connection
	// pooling, HTTP/2) and wrap it with response decompression.
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(baseTransport),
	}

	return &client{
		httpClient: httpClient,
		endpoint:   cfg.Endpoint,
		userAgent:  cfg.UserAgent,
	}
}

// queryRequest is the JSON body posted to the query endpoint.
type queryRequest struct {
	Query string `json:"query"`
}

// execute posts the query document and decodes the data envelope into out.
func (c *client) execute(ctx context.Context, q graphql.Query, out interface{}) error {
	body, err := json.Marshal(queryRequest{Query: q.Document()})
	if err != nil {
		return fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Charset", "UTF-8")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(q.Operation(), "error").Inc()
		return fmt.Errorf("%s query: %w", q.Operation(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.QueriesTotal.WithLabelValues(q.Operation(), "error").Inc()
		return fmt.Errorf("%s query returned status %d", q.Operation(), resp.StatusCode)
	}

	envelope := struct {
		Data interface{} `json:"data"`
	}{Data: out}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&envelope); err != nil {
		metrics.QueriesTotal.WithLabelValues(q.Operation(), "error").Inc()
		return fmt.Errorf("decode %s response: %w", q.Operation(), err)
	}

	metrics.QueriesTotal.WithLabelValues(q.Operation(), "ok").Inc()
	return nil
}

// maxResponseSize bounds a single query response (32 MiB).
const maxResponseSize = 32 << 20
