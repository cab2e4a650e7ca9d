package main

import (
	"fmt"
	"strings"

	"github.com/drgrib/alfred"
	"github.com/jomei/notionapi"
)

// findTitlePropertyName scans a page's property map for the property whose
// declared type is "title". The property's name is user-defined per
// database, so it has to be discovered from the data.
func findTitlePropertyName(page notionapi.Page) (string, error) {
	for name, property := range page.Properties {
		if property.GetType() == notionapi.PropertyTypeTitle {
			return name, nil
		}
	}
	return "", fmt.Errorf("expected title property from Notion API, none found")
}

func toPlainText(richTexts []notionapi.RichText) string {
	var builder strings.Builder
	for _, richText := range richTexts {
		builder.WriteString(richText.PlainText)
	}
	return builder.String()
}

// deepLink rewrites the page's web URL scheme so it opens in the desktop app.
func deepLink(pageURL string) string {
	if strings.HasPrefix(pageURL, "https") {
		return "notion" + strings.TrimPrefix(pageURL, "https")
	}
	return pageURL
}

func pageToAlfredItem(page notionapi.Page, titlePropertyName string, databaseTitle string, icons *IconCache) (alfred.Item, error) {
	titleProperty, ok := page.Properties[titlePropertyName].(*notionapi.TitleProperty)
	if !ok {
		return alfred.Item{}, fmt.Errorf("page %s is missing title property %q", page.ID, titlePropertyName)
	}
	pageTitle := toPlainText(titleProperty.Title)

	item := alfred.Item{
		UID:          string(page.ID),
		Title:        pageTitle,
		Subtitle:     databaseTitle,
		Arg:          deepLink(page.URL),
		Autocomplete: pageTitle,
	}
	if iconPath := icons.LocalPath(page); iconPath != "" {
		item.Icon = &alfred.Icon{Path: iconPath}
	}
	return item, nil
}
