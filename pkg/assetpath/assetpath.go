package assetpath

import "strings"

const (
	CategoryAlbums     = "albums"
	CategorySelections = "selections"
)

/*
Resolve joins path segments with a forward slash. Segments are used as
given: redundant separators are kept and nothing is escaped.
*/
func Resolve(segments ...string) string {
	return strings.Join(segments, "/")
}

// Image is the location of an image under assets/images/<category>/<name>/.
func Image(category, name, file string) string {
	return Resolve("assets", "images", category, name, file)
}

func Album(name, file string) string {
	return Image(CategoryAlbums, name, file)
}

func Selection(key, file string) string {
	return Image(CategorySelections, key, file)
}

// Images resolves every file of one album or selection, keeping order.
func Images(category, name string, files []string) []string {
	result := make([]string, 0, len(files))

	for _, file := range files {
		result = append(result, Image(category, name, file))
	}

	return result
}
