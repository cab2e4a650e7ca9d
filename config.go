package main

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

type App struct {
	databaseIDs      []string
	integrationToken string
	cacheDir         string
	iconsDir         string
	cacheFile        string
}

func setConfig() App {
	var appConfig App

	databaseIDs := os.Getenv("database_ids")
	if databaseIDs == "" {
		log.WithFields(log.Fields{
			"database_ids": databaseIDs,
		}).Fatal("Environment variable missing")
	}
	for _, id := range strings.Split(databaseIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			appConfig.databaseIDs = append(appConfig.databaseIDs, id)
		}
	}

	appConfig.integrationToken = os.Getenv("integration_token")
	if appConfig.integrationToken == "" {
		log.WithFields(log.Fields{
			"integration_token": appConfig.integrationToken,
		}).Fatal("Environment variable missing")
	}

	appConfig.cacheDir = os.Getenv("alfred_workflow_cache")
	if appConfig.cacheDir == "" {
		log.WithFields(log.Fields{
			"alfred_workflow_cache": appConfig.cacheDir,
		}).Fatal("Environment variable missing")
	}
	appConfig.iconsDir = filepath.Join(appConfig.cacheDir, "icons")
	appConfig.cacheFile = filepath.Join(appConfig.cacheDir, "cache.json")

	// Create if they don't exist
	createDir(appConfig.cacheDir)
	createDir(appConfig.iconsDir)

	return appConfig
}

func createDir(dir string) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		log.Fatalf("Failed to create directory %s: %v", dir, err)
	}
}

func cleanDir(dir string) {
	files, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("Failed to read directory %s: %v", dir, err)
	}

	for _, file := range files {
		err := os.RemoveAll(filepath.Join(dir, file.Name()))
		if err != nil {
			log.Printf("Failed to remove file %s: %v", file.Name(), err)
		}
	}
}
