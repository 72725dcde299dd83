package domain

import "strings"

// Learner is a pass-through DTO from GET /users.
type Learner struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func (l Learner) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

func (l Learner) Initials() string {
	return Initials(l.FullName())
}

// LearnerDraft carries the fields POST /users accepts for account
// creation. The password travels to the backend for hashing and is never
// persisted client-side.
type LearnerDraft struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// Initials derives a two-letter avatar from a display name.
func Initials(name string) string {
	var b strings.Builder
	taken := 0
	for _, part := range strings.Fields(name) {
		runes := []rune(part)
		b.WriteString(strings.ToUpper(string(runes[0])))
		taken++
		if taken == 2 {
			break
		}
	}
	return b.String()
}
