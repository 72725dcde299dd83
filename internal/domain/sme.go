package domain

// SME is a subject-matter-expert profile from GET /smes. Phone and bio
// are accepted on create but the backend model may not persist them.
type SME struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Courses   int    `json:"courses,omitempty"`
	Status    string `json:"status,omitempty"`
}

func (s SME) Initials() string {
	return Initials(s.Name)
}

// SMEDraft is the two-step create payload: a backing user account is
// created first, then the profile referencing it.
type SMEDraft struct {
	Name      string
	Expertise string
	Email     string
	Phone     string
	Bio       string
	Password  string
}
