package main

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jomei/notionapi"
	"github.com/melbahja/got"
	log "github.com/sirupsen/logrus"
)

// IconCache materializes page icons under the icons directory. Downloads run
// in the background, so the first invocation may hand out a path to a file
// that does not exist yet; the next invocation finds it on disk.
type IconCache struct {
	dir string
	wg  sync.WaitGroup
}

func NewIconCache(dir string) *IconCache {
	return &IconCache{dir: dir}
}

// LocalPath returns the on-disk path for a page's icon, starting a download
// when the file is not cached yet. Only file-hosted icons are honored; emoji
// and external icons yield an empty path.
func (cache *IconCache) LocalPath(page notionapi.Page) string {
	if page.Icon == nil || page.Icon.Type != notionapi.FileTypeFile || page.Icon.File == nil {
		return ""
	}
	iconURL := page.Icon.File.URL
	localPath := filepath.Join(cache.dir, string(page.ID)+"."+fileExtension(iconURL))

	if _, err := os.Stat(localPath); err == nil {
		// Already cached, don't download again.
		return localPath
	}

	cache.wg.Add(1)
	go func() {
		defer cache.wg.Done()
		if err := got.New().Download(iconURL, localPath); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"url":  iconURL,
				"path": localPath,
			}).Warn("Failed to download icon")
		}
	}()

	return localPath
}

// Wait blocks until every background download has settled.
func (cache *IconCache) Wait() {
	cache.wg.Wait()
}

// Purge removes all previously downloaded icon files.
func (cache *IconCache) Purge() {
	cleanDir(cache.dir)
}

func fileExtension(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(parsed.Path, ".")
	return segments[len(segments)-1]
}
