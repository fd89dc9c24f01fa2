package client

import (
	"context"

	"github.com/mbarthauer/audiothek2rss/internal/apperrors"
	"github.com/mbarthauer/audiothek2rss/internal/config"
	"github.com/mbarthauer/audiothek2rss/internal/graphql"
	"github.com/mbarthauer/audiothek2rss/internal/models"
)

// PopulateEpisodes fetches the most recent published episodes of one
// program set and enriches the model: Items are appended in API order,
// and the image URL and site-relative path come from the richer
// per-program response.
func (c *client) PopulateEpisodes(ctx context.Context, ps *models.ProgramSet, latest int) error {
	id, err := ps.NumericID()
	if err != nil {
		return err
	}

	q := graphql.EpisodesForProgramSet(id, latest)
	var data episodesData
	if err := c.execute(ctx, q, &data); err != nil {
		return err
	}
	if data.ProgramSet == nil {
		return apperrors.NewProgramSetNotFoundError(id)
	}

	items := make([]*models.Item, 0, len(data.ProgramSet.Items.Nodes))
	for _, node := range data.ProgramSet.Items.Nodes {
		items = append(items, newItem(node))
	}
	ps.AddItems(items)

	if data.ProgramSet.Image != nil && data.ProgramSet.Image.URL1x1 != "" {
		url := data.ProgramSet.Image.URL1x1
		ps.ImageURL = &url
	}
	ps.Path = data.ProgramSet.Path

	logger := config.GetLogger()
	logger.Debug().
		Str("programSet", ps.Title).
		Int("episodes", len(items)).
		Msg("Populated episodes")
	return nil
}

// newItem normalizes one episode record. The first audio's URL is the
// enclosure media URL; an episode without one stays in the item list but
// is never serialized.
func newItem(node episodeNode) *models.Item {
	var downloadURL *string
	if len(node.Audios) > 0 {
		downloadURL = node.Audios[0].URL
	}

	duration := 0
	if node.Duration != nil {
		duration = *node.Duration
	}
	pubDate := ""
	if node.PublishDate != nil {
		pubDate = *node.PublishDate
	}
	imageURL := ""
	if node.Image != nil {
		imageURL = node.Image.URL1x1
	}

	return models.NewItem(node.Title, duration, pubDate, downloadURL,
		node.SharingURL, node.Summary, node.Synopsis, imageURL)
}
