package services

import (
	"encoding/json"
	"log/slog"

	"github.com/adampresley/photogallery/pkg/models"
)

/*
Normalize reconciles the two accepted album shapes into the canonical
catalog. An album may be a bare list of file names, or an object with an
images list and an optional title. Anything else degrades to an album
with no images. No album is ever dropped and order is preserved.
*/
func Normalize(raw models.RawObject) *models.AlbumCatalog {
	result := models.NewAlbumCatalog()

	for _, member := range raw.Members() {
		entry, ok := normalizeEntry(member.Name, member.Value)

		if !ok {
			slog.Debug("malformed catalog entry. using an empty album", "album", member.Name)
		}

		result.Set(member.Name, entry)
	}

	return result
}

/*
titledImages is the object shape shared by albums and selections. The
title stays raw so a title that is not a string never costs the images.
*/
type titledImages struct {
	Title  json.RawMessage `json:"title"`
	Images []string        `json:"images"`
}

// title is the declared title when it is a JSON string, else empty.
func (t titledImages) title() string {
	var result string

	if len(t.Title) == 0 || json.Unmarshal(t.Title, &result) != nil {
		return ""
	}

	return result
}

func normalizeEntry(name string, value json.RawMessage) (models.AlbumEntry, bool) {
	var (
		list   []string
		titled titledImages
	)

	if err := json.Unmarshal(value, &list); err == nil && list != nil {
		return models.AlbumEntry{
			Title:  models.DeriveTitle(name),
			Images: list,
		}, true
	}

	if err := json.Unmarshal(value, &titled); err == nil && titled.Images != nil {
		title := titled.title()

		if title == "" {
			title = models.DeriveTitle(name)
		}

		return models.AlbumEntry{
			Title:  title,
			Images: titled.Images,
		}, true
	}

	return models.AlbumEntry{
		Title:  models.DeriveTitle(name),
		Images: []string{},
	}, false
}

/*
NormalizeSelections decodes each selection. A selection that cannot be
decoded is left out, which makes every consumer fall back as if it was
never declared.
*/
func NormalizeSelections(raw models.RawObject) models.SelectionsCatalog {
	result := models.SelectionsCatalog{}

	for _, member := range raw.Members() {
		selection := titledImages{}

		if err := json.Unmarshal(member.Value, &selection); err != nil {
			slog.Warn("malformed selection entry. ignoring", "selection", member.Name, "error", err)
			continue
		}

		result[member.Name] = models.Selection{
			Title:  selection.title(),
			Images: selection.Images,
		}
	}

	return result
}
