package gateway

import (
	"context"
	"net/http"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

// GradeSubmission attaches a first grade to a submission.
func (g *Gateway) GradeSubmission(ctx context.Context, submissionID string, draft models.GradeDraft) (*models.Grade, error) {
	var grade models.Grade
	if err := g.call(ctx, "grading", http.MethodPost, "/grading/submissions/"+submissionID+"/grade", draft, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

// UpdateGrade rewrites an existing grade in place.
func (g *Gateway) UpdateGrade(ctx context.Context, gradeID string, draft models.GradeDraft) (*models.Grade, error) {
	var grade models.Grade
	if err := g.call(ctx, "grading", http.MethodPut, "/grading/grades/"+gradeID, draft, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}
