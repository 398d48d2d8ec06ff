package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

// ErrScoreRequired rejects a grading attempt whose score does not parse
// as an integer, before any network call is made.
var ErrScoreRequired = errors.New("enter a score")

type submissionAPI interface {
	Submissions(ctx context.Context, assignmentID string) ([]models.Submission, error)
	GradeSubmission(ctx context.Context, submissionID string, draft models.GradeDraft) (*models.Grade, error)
	UpdateGrade(ctx context.Context, gradeID string, draft models.GradeDraft) (*models.Grade, error)
}

type SubmissionView interface {
	RenderSubmissions(submissions []models.Submission)
}

// SubmissionFlow lists the submitted works of an assignment and drives
// grading. The create-vs-update split here is keyed off the presence of
// a grade on the fetched record, not off an editing target: an ungraded
// submission gets a new grade, a graded one gets its grade rewritten.
type SubmissionFlow struct {
	api  submissionAPI
	view SubmissionView
}

func NewSubmissionFlow(api submissionAPI, view SubmissionView) *SubmissionFlow {
	return &SubmissionFlow{api: api, view: view}
}

func (f *SubmissionFlow) List(ctx context.Context, assignmentID string) error {
	submissions, err := f.api.Submissions(ctx, assignmentID)
	if err != nil {
		return err
	}
	f.view.RenderSubmissions(submissions)
	return nil
}

// Grade parses the score locally, re-derives the submission from a
// fresh list, dispatches create-grade or update-grade, and refetches
// the whole list on success so grade and comment stay paired on screen.
func (f *SubmissionFlow) Grade(ctx context.Context, assignmentID, submissionID, scoreText, comment string) error {
	score, err := strconv.Atoi(strings.TrimSpace(scoreText))
	if err != nil {
		return ErrScoreRequired
	}

	submissions, err := f.api.Submissions(ctx, assignmentID)
	if err != nil {
		return err
	}

	var target *models.Submission
	for i := range submissions {
		if submissions[i].ID == submissionID {
			target = &submissions[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("submission no longer exists")
	}

	draft := models.GradeDraft{Score: score, Comment: comment}

	if target.Graded() && target.GradeID != nil {
		_, err = f.api.UpdateGrade(ctx, *target.GradeID, draft)
	} else {
		_, err = f.api.GradeSubmission(ctx, target.ID, draft)
	}
	if err != nil {
		return err
	}

	return f.List(ctx, assignmentID)
}
