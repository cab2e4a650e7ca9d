package main

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
)

const queryPageSize = 100

// databaseService is the slice of the Notion client this program uses:
// metadata lookup and paginated queries, both read only.
type databaseService interface {
	Get(ctx context.Context, id notionapi.DatabaseID) (*notionapi.Database, error)
	Query(ctx context.Context, id notionapi.DatabaseID, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error)
}

type NotionDao struct {
	databases databaseService
}

func NewNotionDao(integrationToken string) *NotionDao {
	client := notionapi.NewClient(notionapi.Token(integrationToken))
	return &NotionDao{databases: client.Database}
}

// DatabaseTitle resolves a database id to its human-readable title.
func (dao *NotionDao) DatabaseTitle(ctx context.Context, databaseID string) (string, error) {
	database, err := dao.databases.Get(ctx, notionapi.DatabaseID(databaseID))
	if err != nil {
		return "", fmt.Errorf("failed to retrieve database %s: %w", databaseID, err)
	}
	return toPlainText(database.Title), nil
}

// PageBatches queries a database repeatedly, carrying the cursor forward
// until the API reports no more pages or returns an empty result page.
// Each returned batch is one non-empty page of API results, in API order.
func (dao *NotionDao) PageBatches(ctx context.Context, databaseID string) ([][]notionapi.Page, error) {
	var batches [][]notionapi.Page
	startCursor := notionapi.Cursor("")

	for {
		resp, err := dao.databases.Query(ctx, notionapi.DatabaseID(databaseID), &notionapi.DatabaseQueryRequest{
			PageSize:    queryPageSize,
			StartCursor: startCursor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query database %s: %w", databaseID, err)
		}

		if len(resp.Results) == 0 {
			break
		}
		batches = append(batches, resp.Results)

		if !resp.HasMore {
			break
		}
		startCursor = resp.NextCursor
	}

	return batches, nil
}
