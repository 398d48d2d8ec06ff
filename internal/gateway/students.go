package gateway

import (
	"context"
	"net/http"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

func (g *Gateway) CourseStudents(ctx context.Context, courseID string) ([]models.Student, error) {
	var students []models.Student
	if err := g.call(ctx, "students", http.MethodGet, "/courses/"+courseID+"/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// EnrollStudent adds a student to a course roster by email. The server
// resolves the email to an existing student account.
func (g *Gateway) EnrollStudent(ctx context.Context, courseID string, enrollment models.Enrollment) error {
	return g.call(ctx, "students", http.MethodPost, "/courses/"+courseID+"/students", enrollment, nil)
}

func (g *Gateway) RemoveStudent(ctx context.Context, courseID, studentID string) error {
	return g.call(ctx, "students", http.MethodDelete, "/courses/"+courseID+"/students/"+studentID, nil, nil)
}

func (g *Gateway) AllStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := g.call(ctx, "students", http.MethodGet, "/courses/all-students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}
