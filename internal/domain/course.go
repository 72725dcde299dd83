package domain

type CourseStatus string

const (
	CourseStatusDraft    CourseStatus = "draft"
	CourseStatusActive   CourseStatus = "active"
	CourseStatusArchived CourseStatus = "archived"
)

// Course is a pass-through DTO from GET /courses. The backend owns all
// relational invariants; the client only derives display details.
type Course struct {
	ID        string       `json:"_id"`
	Title     string       `json:"title"`
	Category  string       `json:"category,omitempty"`
	SME       string       `json:"sme,omitempty"`
	Duration  string       `json:"duration,omitempty"`
	Modules   int          `json:"modules,omitempty"`
	Learners  []string     `json:"learners,omitempty"`
	Status    CourseStatus `json:"status"`
	CreatedAt string       `json:"createdAt,omitempty"`
	UpdatedAt string       `json:"updatedAt,omitempty"`
}

// Badge remaps the raw status enum to its display label. Unknown values
// pass through untouched rather than being rejected.
func (s CourseStatus) Badge() string {
	switch s {
	case CourseStatusDraft:
		return "Draft"
	case CourseStatusActive:
		return "Active"
	case CourseStatusArchived:
		return "Archived"
	default:
		return string(s)
	}
}

// CourseDraft carries the fields POST /courses/add accepts. Optional
// fields are omitted when empty so the backend applies its defaults.
type CourseDraft struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	SME      string `json:"sme,omitempty"`
	Duration string `json:"duration,omitempty"`
	Modules  int    `json:"modules,omitempty"`
}
