package domain

import "strings"

type ResourceType string

const (
	ResourceDocument ResourceType = "document"
	ResourceVideo    ResourceType = "video"
	ResourceImage    ResourceType = "image"
	ResourceCode     ResourceType = "code"
)

// Resource is one content-library entry. The backend exposes no library
// endpoint yet, so the catalog ships with the client.
type Resource struct {
	ID   int
	Name string
	Type ResourceType
	Size string
	Date string
}

// FilterResources applies the library surface's type tab and search box
// semantics: an empty or "all" kind matches every type, the search term
// matches case-insensitively on the name.
func FilterResources(resources []Resource, kind, search string) []Resource {
	matched := make([]Resource, 0, len(resources))
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, r := range resources {
		if kind != "" && kind != "all" && string(r.Type) != kind {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.Name), needle) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}
