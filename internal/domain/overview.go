package domain

// Metrics is the dashboard headline object from GET /analytics/metrics.
// CompletionRate arrives as a string from the backend.
type Metrics struct {
	TotalLearners      int    `json:"totalLearners"`
	ActiveCourses      int    `json:"activeCourses"`
	CompletionRate     string `json:"completionRate"`
	CertificatesIssued int    `json:"certificatesIssued"`
}

// CoursePerformance is one row of GET /analytics/course-performance.
type CoursePerformance struct {
	Name       string  `json:"name"`
	Learners   int     `json:"learners"`
	Completion float64 `json:"completion"`
}

// AtRiskLearner is one row of GET /analytics/at-risk-learners. Avatar is
// derived client-side from the name.
type AtRiskLearner struct {
	ID       string  `json:"_id,omitempty"`
	Name     string  `json:"name"`
	Course   string  `json:"course"`
	Progress float64 `json:"progress"`
	Reason   string  `json:"reason"`
	Avatar   string  `json:"avatar,omitempty"`
}

// Activity is one row of GET /activitylog with its populated references.
type Activity struct {
	ID     string       `json:"_id"`
	User   ActivityUser `json:"user_id"`
	Action string       `json:"action"`
	Course *ActivityRef `json:"course_id,omitempty"`
	At     string       `json:"timestamp"`
}

type ActivityUser struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ActivityRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}
