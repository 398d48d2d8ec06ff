package gateway

import (
	"context"
	"net/http"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

func (g *Gateway) Courses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := g.call(ctx, "courses", http.MethodGet, "/courses/", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (g *Gateway) Course(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	if err := g.call(ctx, "courses", http.MethodGet, "/courses/"+courseID, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (g *Gateway) CreateCourse(ctx context.Context, draft models.CourseDraft) (*models.Course, error) {
	var course models.Course
	if err := g.call(ctx, "courses", http.MethodPost, "/courses/", draft, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (g *Gateway) UpdateCourse(ctx context.Context, courseID string, draft models.CourseDraft) (*models.Course, error) {
	var course models.Course
	if err := g.call(ctx, "courses", http.MethodPut, "/courses/"+courseID, draft, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (g *Gateway) DeleteCourse(ctx context.Context, courseID string) error {
	return g.call(ctx, "courses", http.MethodDelete, "/courses/"+courseID, nil, nil)
}
