package application

import "github.com/learnhub/learnhub-cli/internal/domain"

// LibraryService serves the content-library catalog. The backend exposes
// no library endpoint yet, so the resource set ships with the client and
// only the filtering is live.
type LibraryService struct {
	resources []domain.Resource
}

func NewLibraryService() *LibraryService {
	return &LibraryService{resources: builtinResources()}
}

func (s *LibraryService) Resources(kind, search string) []domain.Resource {
	return domain.FilterResources(s.resources, kind, search)
}

func builtinResources() []domain.Resource {
	return []domain.Resource{
		{ID: 1, Name: "Course Syllabus Template.pdf", Type: domain.ResourceDocument, Size: "2.4 MB", Date: "2024-03-15"},
		{ID: 2, Name: "UX Design Tutorial.mp4", Type: domain.ResourceVideo, Size: "45.2 MB", Date: "2024-03-14"},
		{ID: 3, Name: "React Components Guide.pdf", Type: domain.ResourceDocument, Size: "1.8 MB", Date: "2024-03-13"},
		{ID: 4, Name: "Hero Banner.png", Type: domain.ResourceImage, Size: "856 KB", Date: "2024-03-12"},
		{ID: 5, Name: "Authentication Flow.mp4", Type: domain.ResourceVideo, Size: "32.1 MB", Date: "2024-03-11"},
		{ID: 6, Name: "API Documentation.md", Type: domain.ResourceCode, Size: "124 KB", Date: "2024-03-10"},
		{ID: 7, Name: "Dashboard Wireframe.png", Type: domain.ResourceImage, Size: "1.2 MB", Date: "2024-03-09"},
		{ID: 8, Name: "Database Schema.pdf", Type: domain.ResourceDocument, Size: "980 KB", Date: "2024-03-08"},
	}
}
