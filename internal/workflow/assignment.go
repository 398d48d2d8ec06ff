package workflow

import (
	"context"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

type assignmentAPI interface {
	Assignments(ctx context.Context, courseID string) ([]models.Assignment, error)
	CreateAssignment(ctx context.Context, courseID string, draft models.AssignmentDraft) (*models.Assignment, error)
	UpdateAssignment(ctx context.Context, assignmentID string, draft models.AssignmentDraft) (*models.Assignment, error)
	DeleteAssignment(ctx context.Context, assignmentID string) error
}

type AssignmentView interface {
	RenderAssignments(assignments []models.Assignment)
}

// AssignmentFlow manages the assignments of one course.
type AssignmentFlow struct {
	api      assignmentAPI
	view     AssignmentView
	confirm  Prompter
	courseID string
	editor   editor
}

func NewAssignmentFlow(api assignmentAPI, view AssignmentView, confirm Prompter, courseID string) *AssignmentFlow {
	return &AssignmentFlow{api: api, view: view, confirm: confirm, courseID: courseID}
}

func (f *AssignmentFlow) List(ctx context.Context) error {
	assignments, err := f.api.Assignments(ctx, f.courseID)
	if err != nil {
		return err
	}
	f.view.RenderAssignments(assignments)
	return nil
}

func (f *AssignmentFlow) StartCreate() *models.AssignmentDraft {
	f.editor.startCompose("")
	return &models.AssignmentDraft{MaxScore: 100}
}

func (f *AssignmentFlow) StartEdit(ctx context.Context, assignmentID string) (*models.AssignmentDraft, error) {
	assignments, err := f.api.Assignments(ctx, f.courseID)
	if err != nil {
		return nil, err
	}

	for _, a := range assignments {
		if a.ID == assignmentID {
			f.editor.startCompose(assignmentID)
			return &models.AssignmentDraft{
				Title:       a.Title,
				Description: a.Description,
				MaxScore:    a.MaxScore,
				Deadline:    a.Deadline,
			}, nil
		}
	}
	return nil, nil
}

func (f *AssignmentFlow) Cancel() {
	f.editor.cancel()
}

func (f *AssignmentFlow) Submit(ctx context.Context, draft models.AssignmentDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	gen, err := f.editor.beginSubmit()
	if err != nil {
		return err
	}

	if target := f.editor.editing(); target == "" {
		_, err = f.api.CreateAssignment(ctx, f.courseID, draft)
	} else {
		_, err = f.api.UpdateAssignment(ctx, target, draft)
	}

	if !f.editor.isCurrent(gen) {
		return nil
	}
	if err != nil {
		f.editor.failSubmit()
		return err
	}

	f.editor.finishSubmit()
	return f.List(ctx)
}

func (f *AssignmentFlow) Remove(ctx context.Context, assignmentID string) error {
	if !f.confirm.Confirm("Delete this assignment?") {
		return nil
	}

	if err := f.api.DeleteAssignment(ctx, assignmentID); err != nil {
		return err
	}
	return f.List(ctx)
}
