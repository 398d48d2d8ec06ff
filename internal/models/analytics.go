package models

type CourseStats struct {
	CourseID         string  `json:"course_id"`
	CourseTitle      string  `json:"course_title"`
	StudentsCount    int     `json:"students_count"`
	AssignmentsCount int     `json:"assignments_count"`
	TotalSubmissions int     `json:"total_submissions"`
	AverageScore     float64 `json:"average_score"`
}

type StudentProgress struct {
	StudentID            string  `json:"student_id"`
	StudentName          string  `json:"student_name"`
	SubmissionsCount     int     `json:"submissions_count"`
	GradedCount          int     `json:"graded_count"`
	AverageScore         float64 `json:"average_score"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// MockDataReport comes back from the admin mock-data generator.
type MockDataReport struct {
	Message string `json:"message"`
	Created int    `json:"created"`
}
