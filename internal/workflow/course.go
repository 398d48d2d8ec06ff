package workflow

import (
	"context"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

type courseAPI interface {
	Courses(ctx context.Context) ([]models.Course, error)
	CreateCourse(ctx context.Context, draft models.CourseDraft) (*models.Course, error)
	UpdateCourse(ctx context.Context, courseID string, draft models.CourseDraft) (*models.Course, error)
	DeleteCourse(ctx context.Context, courseID string) error
	CourseStats(ctx context.Context, courseID string) (*models.CourseStats, error)
	StudentProgress(ctx context.Context, courseID string) ([]models.StudentProgress, error)
}

type CourseView interface {
	RenderCourses(courses []models.Course)
	RenderStats(stats models.CourseStats, progress []models.StudentProgress)
}

// CourseFlow drives the teacher's course list: create, edit, delete and
// the aggregate stats view.
type CourseFlow struct {
	api     courseAPI
	view    CourseView
	confirm Prompter
	editor  editor
}

func NewCourseFlow(api courseAPI, view CourseView, confirm Prompter) *CourseFlow {
	return &CourseFlow{api: api, view: view, confirm: confirm}
}

func (f *CourseFlow) List(ctx context.Context) error {
	courses, err := f.api.Courses(ctx)
	if err != nil {
		return err
	}
	f.view.RenderCourses(courses)
	return nil
}

// StartCreate opens a blank form; the next submit will create.
func (f *CourseFlow) StartCreate() *models.CourseDraft {
	f.editor.startCompose("")
	return &models.CourseDraft{}
}

// StartEdit re-derives the target record from a fresh list. A vanished
// id is a silent no-op: nil draft, no form, no error.
func (f *CourseFlow) StartEdit(ctx context.Context, courseID string) (*models.CourseDraft, error) {
	courses, err := f.api.Courses(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range courses {
		if c.ID == courseID {
			f.editor.startCompose(courseID)
			return &models.CourseDraft{Title: c.Title, Description: c.Description}, nil
		}
	}
	return nil, nil
}

func (f *CourseFlow) Cancel() {
	f.editor.cancel()
}

// Submit creates or updates depending on the editing target. On success
// the form closes and the list is refetched; on failure the composing
// state survives so the user can correct and retry.
func (f *CourseFlow) Submit(ctx context.Context, draft models.CourseDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	gen, err := f.editor.beginSubmit()
	if err != nil {
		return err
	}

	if target := f.editor.editing(); target == "" {
		_, err = f.api.CreateCourse(ctx, draft)
	} else {
		_, err = f.api.UpdateCourse(ctx, target, draft)
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

func (f *CourseFlow) Remove(ctx context.Context, courseID string) error {
	if !f.confirm.Confirm("Delete this course?") {
		return nil
	}

	if err := f.api.DeleteCourse(ctx, courseID); err != nil {
		return err
	}
	return f.List(ctx)
}

// Stats fetches course aggregates and per-student progress. Both calls
// must succeed before anything is rendered; a partial result leaves the
// previous stats view untouched.
func (f *CourseFlow) Stats(ctx context.Context, courseID string) error {
	stats, err := f.api.CourseStats(ctx, courseID)
	if err != nil {
		return err
	}

	progress, err := f.api.StudentProgress(ctx, courseID)
	if err != nil {
		return err
	}

	f.view.RenderStats(*stats, progress)
	return nil
}
