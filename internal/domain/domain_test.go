package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "two names", in: "Sarah Chen", want: "SC"},
		{name: "single name", in: "Sarah", want: "S"},
		{name: "three names capped at two", in: "Michael De Torres", want: "MD"},
		{name: "lowercase input", in: "michael torres", want: "MT"},
		{name: "empty", in: "", want: ""},
		{name: "surrounding whitespace", in: "  Amy   Wu  ", want: "AW"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Initials(tc.in))
		})
	}
}

func TestCourseStatusBadge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Draft", CourseStatusDraft.Badge())
	assert.Equal(t, "Active", CourseStatusActive.Badge())
	assert.Equal(t, "Archived", CourseStatusArchived.Badge())
	assert.Equal(t, "retired", CourseStatus("retired").Badge())
}

func TestSessionAuthenticatedDerivesFromToken(t *testing.T) {
	t.Parallel()

	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{Principal: &Principal{ID: "1", Name: "A"}}.Authenticated())
	assert.True(t, Session{Token: "t1"}.Authenticated())
}

func TestFilterResources(t *testing.T) {
	t.Parallel()

	catalog := []Resource{
		{ID: 1, Name: "Course Syllabus Template.pdf", Type: ResourceDocument},
		{ID: 2, Name: "UX Design Tutorial.mp4", Type: ResourceVideo},
		{ID: 3, Name: "Hero Banner.png", Type: ResourceImage},
	}

	all := FilterResources(catalog, "all", "")
	assert.Len(t, all, 3)

	videos := FilterResources(catalog, "video", "")
	assert.Len(t, videos, 1)
	assert.Equal(t, 2, videos[0].ID)

	search := FilterResources(catalog, "", "syllabus")
	assert.Len(t, search, 1)
	assert.Equal(t, 1, search[0].ID)

	assert.Empty(t, FilterResources(catalog, "video", "syllabus"))
}
