package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/learnhub/learnhub-cli/internal/application"
	"github.com/learnhub/learnhub-cli/internal/domain"
)

// Courses renders the course catalog table.
func Courses(courses []domain.Course) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Courses"),
			s.header.Render(fmt.Sprintf("total: %d", len(courses))),
		}

		if len(courses) == 0 {
			lines = append(lines, s.empty.Render("No courses yet."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, course := range courses {
			lines = append(lines, renderCourse(course, s))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func renderCourse(course domain.Course, s styles) string {
	badge := s.badgeFor(string(course.Status)).Render(course.Status.Badge())

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.section.Render(course.Title), " ", badge),
	}

	details := make([]string, 0, 4)
	if course.Category != "" {
		details = append(details, "category: "+course.Category)
	}
	if course.SME != "" {
		details = append(details, "expert: "+course.SME)
	}
	if course.Duration != "" {
		details = append(details, "duration: "+course.Duration)
	}
	details = append(details, fmt.Sprintf("learners: %d", len(course.Learners)))

	parts = append(parts, s.muted.Render("  "+strings.Join(details, "  ")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Learners renders the learner directory table.
func Learners(learners []domain.Learner) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Learners"),
			s.header.Render(fmt.Sprintf("total: %d", len(learners))),
		}

		if len(learners) == 0 {
			lines = append(lines, s.empty.Render("No learners yet."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, learner := range learners {
			lines = append(lines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.label.Render(learner.Initials()),
				" ",
				s.value.Render(learner.FullName()),
				" ",
				s.muted.Render(learner.Email),
				" ",
				s.muted.Render(learner.Role),
			))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

// Experts renders the subject-matter-expert cards.
func Experts(experts []domain.SME) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Subject Matter Experts"),
			s.header.Render(fmt.Sprintf("total: %d", len(experts))),
		}

		if len(experts) == 0 {
			lines = append(lines, s.empty.Render("No experts yet."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, expert := range experts {
			lines = append(lines, s.card.Render(renderExpert(expert, s)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func renderExpert(expert domain.SME, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(expert.Initials()), " ", s.section.Render(expert.Name)),
		s.value.Render(expert.Expertise),
		s.muted.Render(expert.Email),
	}

	if expert.Phone != "" {
		parts = append(parts, s.muted.Render(expert.Phone))
	}
	if expert.Courses > 0 {
		parts = append(parts, s.muted.Render(fmt.Sprintf("courses: %d", expert.Courses)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Overview renders the dashboard: headline metrics, course performance,
// at-risk learners and the recent activity feed.
func Overview(overview application.Overview) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Dashboard"),
			renderMetrics(overview.Metrics, s),
			s.section.Render("Course Performance"),
		}

		if len(overview.Performance) == 0 {
			lines = append(lines, s.empty.Render("No course data."))
		}
		for _, row := range overview.Performance {
			lines = append(lines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.value.Render(row.Name),
				" ",
				s.muted.Render(fmt.Sprintf("%d learners", row.Learners)),
				" ",
				s.muted.Render(fmt.Sprintf("%.0f%% completion", row.Completion)),
			))
		}

		lines = append(lines, s.section.Render("At-Risk Learners"))
		if len(overview.AtRisk) == 0 {
			lines = append(lines, s.empty.Render("No learners at risk."))
		}
		for _, learner := range overview.AtRisk {
			lines = append(lines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.label.Render(learner.Avatar),
				" ",
				s.value.Render(learner.Name),
				" ",
				s.muted.Render(learner.Course),
				" ",
				s.warn.Render(fmt.Sprintf("%.0f%%", learner.Progress)),
				" ",
				s.muted.Render(learner.Reason),
			))
		}

		lines = append(lines, s.section.Render("Recent Activity"))
		if len(overview.Activities) == 0 {
			lines = append(lines, s.empty.Render("No recent activity."))
		}
		for _, activity := range overview.Activities {
			lines = append(lines, renderActivity(activity, s))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func renderMetrics(m domain.Metrics, s styles) string {
	pairs := []string{
		metric("learners", fmt.Sprintf("%d", m.TotalLearners), s),
		metric("active courses", fmt.Sprintf("%d", m.ActiveCourses), s),
		metric("completion", m.CompletionRate, s),
		metric("certificates", fmt.Sprintf("%d", m.CertificatesIssued), s),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(pairs, "  "))
}

func metric(label, value string, s styles) string {
	return s.label.Render(label+":") + " " + s.value.Render(value)
}

func renderActivity(activity domain.Activity, s styles) string {
	who := strings.TrimSpace(activity.User.FirstName + " " + activity.User.LastName)
	if who == "" {
		who = "Someone"
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.value.Render(who),
		" ",
		s.muted.Render(activity.Action),
	)

	if activity.Course != nil {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, " ", s.muted.Render(activity.Course.Title))
	}
	if activity.At != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, " ", s.muted.Render(activity.At))
	}

	return line
}

// Resources renders the content library listing.
func Resources(resources []domain.Resource) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Content Library"),
			s.header.Render(fmt.Sprintf("total: %d", len(resources))),
		}

		if len(resources) == 0 {
			lines = append(lines, s.empty.Render("No resources match."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, resource := range resources {
			lines = append(lines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.value.Render(resource.Name),
				" ",
				s.muted.Render(string(resource.Type)),
				" ",
				s.muted.Render(resource.Size),
				" ",
				s.muted.Render(resource.Date),
			))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

// Whoami renders the current session identity.
func Whoami(session domain.Session) (string, error) {
	return render(func(s styles) string {
		if !session.Authenticated() {
			return s.empty.Render("Not logged in.")
		}

		lines := []string{s.title.Render("Session")}
		if session.Principal != nil {
			lines = append(lines,
				metric("name", session.Principal.Name, s),
				metric("id", session.Principal.ID, s),
			)
		} else {
			lines = append(lines, s.warn.Render("Logged in, profile details unavailable."))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}
