package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDatabaseService serves canned query batches and records the cursors
// it was called with.
type fakeDatabaseService struct {
	database *notionapi.Database
	batches  [][]notionapi.Page
	cursors  []notionapi.Cursor
	calls    int
}

func (f *fakeDatabaseService) Get(_ context.Context, _ notionapi.DatabaseID) (*notionapi.Database, error) {
	if f.database == nil {
		return nil, errors.New("object_not_found")
	}
	return f.database, nil
}

func (f *fakeDatabaseService) Query(_ context.Context, _ notionapi.DatabaseID, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error) {
	f.cursors = append(f.cursors, req.StartCursor)
	if f.calls >= len(f.batches) {
		return &notionapi.DatabaseQueryResponse{}, nil
	}

	batch := f.batches[f.calls]
	f.calls++
	resp := &notionapi.DatabaseQueryResponse{
		Results: batch,
		HasMore: f.calls < len(f.batches),
	}
	if resp.HasMore {
		resp.NextCursor = notionapi.Cursor(fmt.Sprintf("cursor-%d", f.calls))
	}
	return resp, nil
}

func titledPage(id, title string) notionapi.Page {
	return notionapi.Page{
		ID:  notionapi.ObjectID(id),
		URL: "https://www.notion.so/" + id,
		Properties: notionapi.Properties{
			"Name": &notionapi.TitleProperty{
				Type:  notionapi.PropertyTypeTitle,
				Title: []notionapi.RichText{{PlainText: title}},
			},
		},
	}
}

func TestDatabaseTitle(t *testing.T) {
	dao := &NotionDao{databases: &fakeDatabaseService{
		database: &notionapi.Database{
			Title: []notionapi.RichText{{PlainText: "Home "}, {PlainText: "appliances"}},
		},
	}}

	title, err := dao.DatabaseTitle(context.Background(), "db-1")
	require.NoError(t, err)
	assert.Equal(t, "Home appliances", title)
}

func TestDatabaseTitleLookupFailure(t *testing.T) {
	dao := &NotionDao{databases: &fakeDatabaseService{}}

	_, err := dao.DatabaseTitle(context.Background(), "db-1")
	assert.Error(t, err)
}

func TestPageBatchesCarriesCursorForward(t *testing.T) {
	fake := &fakeDatabaseService{
		batches: [][]notionapi.Page{
			{titledPage("a", "First"), titledPage("b", "Second")},
			{titledPage("c", "Third")},
		},
	}
	dao := &NotionDao{databases: fake}

	batches, err := dao.PageBatches(context.Background(), "db-1")
	require.NoError(t, err)

	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[1], 1)
	assert.Equal(t, []notionapi.Cursor{"", "cursor-1"}, fake.cursors)
}

func TestPageBatchesStopsOnEmptyResultPage(t *testing.T) {
	fake := &fakeDatabaseService{
		batches: [][]notionapi.Page{{}},
	}
	dao := &NotionDao{databases: fake}

	batches, err := dao.PageBatches(context.Background(), "db-1")
	require.NoError(t, err)
	assert.Empty(t, batches)
	assert.Equal(t, 1, len(fake.cursors))
}

func TestPageBatchesQueryFailure(t *testing.T) {
	dao := &NotionDao{databases: &failingDatabaseService{}}

	_, err := dao.PageBatches(context.Background(), "db-1")
	assert.Error(t, err)
}

type failingDatabaseService struct{}

func (failingDatabaseService) Get(_ context.Context, _ notionapi.DatabaseID) (*notionapi.Database, error) {
	return nil, errors.New("unauthorized")
}

func (failingDatabaseService) Query(_ context.Context, _ notionapi.DatabaseID, _ *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error) {
	return nil, errors.New("unauthorized")
}
