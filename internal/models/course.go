package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TeacherID   string    `json:"teacher_id"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseDraft is the payload for create and update alike; the server
// assigns ids and ownership.
type CourseDraft struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// Student is the per-course enrollment slice: who is on the roster.
type Student struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Enrollment adds a student to a course roster by email.
type Enrollment struct {
	Email string `json:"email" validate:"required,email"`
}

func (d *CourseDraft) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

func (e *Enrollment) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}
