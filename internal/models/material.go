package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Material struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	FileURL     *string   `json:"file_url"`
	OrderNumber int       `json:"order_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MaterialDraft struct {
	Title       string  `json:"title" validate:"required"`
	Content     string  `json:"content"`
	FileURL     *string `json:"file_url"`
	OrderNumber int     `json:"order_number" validate:"min=0"`
}

func (d *MaterialDraft) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}
