package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

// terminal is the rendering collaborator: it draws lists and collects
// field values, and contains no decision logic of its own.
type terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func newTerminal(in io.Reader, out io.Writer) *terminal {
	return &terminal{in: bufio.NewScanner(in), out: out}
}

func (t *terminal) say(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

func (t *terminal) prompt(label string) string {
	fmt.Fprintf(t.out, "%s: ", label)
	if !t.in.Scan() {
		return ""
	}
	return strings.TrimSpace(t.in.Text())
}

// promptDefault keeps the current value when the user just hits enter,
// so edit forms come pre-filled.
func (t *terminal) promptDefault(label, current string) string {
	fmt.Fprintf(t.out, "%s [%s]: ", label, current)
	if !t.in.Scan() {
		return current
	}
	text := strings.TrimSpace(t.in.Text())
	if text == "" {
		return current
	}
	return text
}

func (t *terminal) Confirm(question string) bool {
	answer := t.prompt(question + " (y/N)")
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func (t *terminal) RenderCourses(courses []models.Course) {
	if len(courses) == 0 {
		t.say("No courses yet. Create the first one!")
		return
	}
	for _, c := range courses {
		desc := c.Description
		if desc == "" {
			desc = "no description"
		}
		t.say("%s  %s — %s", c.ID, c.Title, desc)
	}
}

func (t *terminal) RenderMaterials(materials []models.Material) {
	if len(materials) == 0 {
		t.say("No materials yet.")
		return
	}
	for _, m := range materials {
		line := fmt.Sprintf("%s  #%d %s", m.ID, m.OrderNumber, m.Title)
		if m.FileURL != nil {
			line += fmt.Sprintf(" (%s)", *m.FileURL)
		}
		t.say("%s", line)
	}
}

func (t *terminal) RenderAssignments(assignments []models.Assignment) {
	if len(assignments) == 0 {
		t.say("No assignments yet.")
		return
	}
	for _, a := range assignments {
		deadline := "no deadline"
		if a.Deadline != nil {
			deadline = a.Deadline.Format("2006-01-02 15:04")
		}
		t.say("%s  %s (max %d, due %s)", a.ID, a.Title, a.MaxScore, deadline)
	}
}

func (t *terminal) RenderSubmissions(submissions []models.Submission) {
	if len(submissions) == 0 {
		t.say("No submissions yet.")
		return
	}
	for _, s := range submissions {
		t.say("%s  %s [%s] submitted %s", s.ID, s.StudentName, s.Status, s.SubmittedAt.Format("2006-01-02 15:04"))
		if s.Graded() {
			comment := "no comment"
			if s.GradeComment != nil && *s.GradeComment != "" {
				comment = *s.GradeComment
			}
			t.say("    grade: %d (%s)", *s.Grade, comment)
		} else {
			t.say("    not graded yet")
		}
	}
}

func (t *terminal) RenderStudents(students []models.Student) {
	if len(students) == 0 {
		t.say("No students yet.")
		return
	}
	for _, s := range students {
		t.say("%s  %s <%s>", s.ID, s.FullName, s.Email)
	}
}

func (t *terminal) RenderStats(stats models.CourseStats, progress []models.StudentProgress) {
	t.say("Course: %s", stats.CourseTitle)
	t.say("  students: %d, assignments: %d, submissions: %d, average score: %.2f",
		stats.StudentsCount, stats.AssignmentsCount, stats.TotalSubmissions, stats.AverageScore)
	for _, p := range progress {
		t.say("  %-25s submitted %d, graded %d, avg %.2f, progress %.0f%%",
			p.StudentName, p.SubmissionsCount, p.GradedCount, p.AverageScore, p.CompletionPercentage)
	}
}
