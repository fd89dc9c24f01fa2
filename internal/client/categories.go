package client

import (
	"context"

	"github.com/mbarthauer/audiothek2rss/internal/apperrors"
	"github.com/mbarthauer/audiothek2rss/internal/config"
	"github.com/mbarthauer/audiothek2rss/internal/graphql"
	"github.com/mbarthauer/audiothek2rss/internal/models"
)

// Categories resolves the category selectors. Explicit IDs win over the
// search term; with neither set no query is issued at all.
func (c *client) Categories(ctx context.Context, ids []int, search string) ([]models.Category, error) {
	if len(ids) == 0 && search == "" {
		return nil, nil
	}

	var q graphql.Query
	if len(ids) > 0 {
		q = graphql.CategoriesByIDs(ids)
	} else {
		q = graphql.CategoriesBySearch(search)
	}

	var data categoriesData
	if err := c.execute(ctx, q, &data); err != nil {
		return nil, err
	}

	conn := data.connection()
	if conn == nil {
		return nil, apperrors.NewMalformedResponseError(q.Operation(), "missing category connection")
	}

	categories := make([]models.Category, 0, len(conn.Edges))
	for _, edge := range conn.Edges {
		categories = append(categories, models.Category{
			ID:    edge.Node.ID.String(),
			Title: edge.Node.Title,
		})
	}

	logger := config.GetLogger()
	logger.Debug().Int("count", len(categories)).Msg("Resolved categories")
	return categories, nil
}
