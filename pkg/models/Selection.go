package models

const (
	SelectionFrontPage    = "front-page"
	SelectionSelectedWork = "selected_work"
)

/*
Selection is a curated set of images independent of the album
structure. A nil Images slice means the document carried no image list.
*/
type Selection struct {
	Title  string   `json:"title"`
	Images []string `json:"images"`
}

type SelectionsCatalog map[string]Selection

// Images returns the image list for key and whether the selection declares one.
func (s SelectionsCatalog) Images(key string) ([]string, bool) {
	selection, ok := s[key]

	if !ok || selection.Images == nil {
		return nil, false
	}

	return selection.Images, true
}
