package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Assignment struct {
	ID          string     `json:"id"`
	CourseID    string     `json:"course_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	MaxScore    int        `json:"max_score"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type AssignmentDraft struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	MaxScore    int        `json:"max_score" validate:"required,min=1"`
	Deadline    *time.Time `json:"deadline"`
}

// Submission is the teacher-facing view of a student's work. Grade,
// GradeID and GradeComment are all nil until the work has been graded;
// the grading flow keeps them in lockstep.
type Submission struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignment_id"`
	StudentID    string    `json:"student_id"`
	StudentName  string    `json:"student_name"`
	Content      string    `json:"content"`
	FileURL      *string   `json:"file_url"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
	Grade        *int      `json:"grade"`
	GradeID      *string   `json:"grade_id,omitempty"`
	GradeComment *string   `json:"grade_comment"`
}

func (s *Submission) Graded() bool {
	return s.Grade != nil
}

func (d *AssignmentDraft) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}
