package client

import (
	"context"

	"github.com/mbarthauer/audiothek2rss/internal/apperrors"
	"github.com/mbarthauer/audiothek2rss/internal/config"
	"github.com/mbarthauer/audiothek2rss/internal/graphql"
	"github.com/mbarthauer/audiothek2rss/internal/models"
)

// ProgramSets pages through the program-set listing. The total count is
// learned from the first page and treated as stable for the rest of the
// run; pages are requested at offsets 0, p, 2p, ... while the offset is
// still below that total. Records are deduplicated by ID across pages.
func (c *client) ProgramSets(ctx context.Context, filter graphql.Filter, pageSize int) ([]*models.ProgramSet, error) {
	logger := config.GetLogger()

	var programSets []*models.ProgramSet
	seen := make(map[string]struct{})

	totalCount := -1
	for offset := 0; totalCount < 0 || offset < totalCount; offset += pageSize {
		q := graphql.ProgramSets(filter, graphql.Page{Limit: pageSize, Offset: offset})

		var data programSetsData
		if err := c.execute(ctx, q, &data); err != nil {
			return nil, err
		}
		if data.ProgramSets == nil {
			return nil, apperrors.NewMalformedResponseError(q.Operation(), "missing programSets connection")
		}

		if totalCount < 0 {
			totalCount = data.ProgramSets.TotalCount
			logger.Debug().Int("totalCount", totalCount).Int("pageSize", pageSize).Msg("Program set listing started")
			if totalCount <= 0 {
				break
			}
		}

		for _, edge := range data.ProgramSets.Edges {
			node := edge.Node
			if _, exists := seen[node.ID.String()]; exists {
				continue
			}
			seen[node.ID.String()] = struct{}{}
			programSets = append(programSets, newProgramSet(node))
		}
	}

	logger.Info().Int("count", len(programSets)).Msg("Fetched program sets")
	return programSets, nil
}

// ProgramSetsByIDs fetches exactly the given program sets in one call.
func (c *client) ProgramSetsByIDs(ctx context.Context, ids []int) ([]*models.ProgramSet, error) {
	q := graphql.ProgramSetsByIDs(ids)

	var data programSetsByIDsData
	if err := c.execute(ctx, q, &data); err != nil {
		return nil, err
	}
	if data.ProgramSetsByIDs == nil {
		return nil, apperrors.NewMalformedResponseError(q.Operation(), "missing programSetsByIds connection")
	}

	programSets := make([]*models.ProgramSet, 0, len(data.ProgramSetsByIDs.Nodes))
	for _, node := range data.ProgramSetsByIDs.Nodes {
		programSets = append(programSets, newProgramSet(node))
	}

	logger := config.GetLogger()
	logger.Info().Int("count", len(programSets)).Msg("Fetched program sets by ID")
	return programSets, nil
}

// newProgramSet maps a listing record into the domain model. The image URL
// and site path are only known after the episode query.
func newProgramSet(node programSetNode) *models.ProgramSet {
	return &models.ProgramSet{
		ID:          node.ID.String(),
		Title:       node.Title,
		SharingURL:  node.SharingURL,
		Description: node.Description,
		Synopsis:    node.Synopsis,
	}
}
