package gateway

import (
	"context"
	"net/http"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

func (g *Gateway) Assignments(ctx context.Context, courseID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := g.call(ctx, "assignments", http.MethodGet, "/assignments/courses/"+courseID+"/assignments", nil, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (g *Gateway) CreateAssignment(ctx context.Context, courseID string, draft models.AssignmentDraft) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := g.call(ctx, "assignments", http.MethodPost, "/assignments/courses/"+courseID+"/assignments", draft, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (g *Gateway) UpdateAssignment(ctx context.Context, assignmentID string, draft models.AssignmentDraft) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := g.call(ctx, "assignments", http.MethodPut, "/assignments/"+assignmentID, draft, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (g *Gateway) DeleteAssignment(ctx context.Context, assignmentID string) error {
	return g.call(ctx, "assignments", http.MethodDelete, "/assignments/"+assignmentID, nil, nil)
}

func (g *Gateway) Submissions(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := g.call(ctx, "submissions", http.MethodGet, "/assignments/"+assignmentID+"/submissions", nil, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
