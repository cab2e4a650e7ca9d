package main

import (
	"context"
	"flag"

	"github.com/drgrib/alfred"
	log "github.com/sirupsen/logrus"
)

func main() {
	refreshIcons := flag.Bool("refresh-icons", false, "delete cached icons before fetching")
	flag.Parse()

	appConfig := setConfig()

	icons := NewIconCache(appConfig.iconsDir)
	if *refreshIcons {
		icons.Purge()
	}

	dao := NewNotionDao(appConfig.integrationToken)
	ctx := context.Background()

	var items []alfred.Item
	for _, databaseID := range appConfig.databaseIDs {
		databaseItems, err := collectDatabaseItems(ctx, dao, databaseID, icons)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"database_id": databaseID,
			}).Fatal("Failed to fetch database")
		}
		items = append(items, databaseItems...)
	}

	seen, err := readCachedTitles(appConfig.cacheFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to read cache")
	}

	// The workflow reads the cache file by itself, so only items it has not
	// seen yet go to stdout.
	for _, item := range newItems(items, seen) {
		alfred.Add(item)
	}
	alfred.Run()

	if err := writeCache(appConfig.cacheFile, items); err != nil {
		log.WithError(err).Fatal("Failed to update cache")
	}

	// Results are already on stdout; linger only until pending icon
	// downloads have landed on disk.
	icons.Wait()
}

// collectDatabaseItems turns every page of one database into Alfred items,
// in API order. The title property name is discovered from the first record
// of each result batch and reused for the rest of the batch.
func collectDatabaseItems(ctx context.Context, dao *NotionDao, databaseID string, icons *IconCache) ([]alfred.Item, error) {
	databaseTitle, err := dao.DatabaseTitle(ctx, databaseID)
	if err != nil {
		return nil, err
	}

	batches, err := dao.PageBatches(ctx, databaseID)
	if err != nil {
		return nil, err
	}

	var items []alfred.Item
	for _, batch := range batches {
		titlePropertyName, err := findTitlePropertyName(batch[0])
		if err != nil {
			return nil, err
		}
		for _, page := range batch {
			item, err := pageToAlfredItem(page, titlePropertyName, databaseTitle, icons)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	return items, nil
}
