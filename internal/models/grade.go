package models

import "time"

type Grade struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	TeacherID    *string   `json:"teacher_id"`
	Score        int       `json:"score"`
	Comment      *string   `json:"comment"`
	GradedAt     time.Time `json:"graded_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type GradeDraft struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}
