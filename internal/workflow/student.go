package workflow

import (
	"context"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

type studentAPI interface {
	CourseStudents(ctx context.Context, courseID string) ([]models.Student, error)
	EnrollStudent(ctx context.Context, courseID string, enrollment models.Enrollment) error
	RemoveStudent(ctx context.Context, courseID, studentID string) error
}

type StudentView interface {
	RenderStudents(students []models.Student)
}

// StudentFlow manages the roster of one course. Enrollments are only
// ever created, so the editing target stays empty; the state machine is
// still used to gate a second enroll while one is in flight.
type StudentFlow struct {
	api      studentAPI
	view     StudentView
	confirm  Prompter
	courseID string
	editor   editor
}

func NewStudentFlow(api studentAPI, view StudentView, confirm Prompter, courseID string) *StudentFlow {
	return &StudentFlow{api: api, view: view, confirm: confirm, courseID: courseID}
}

func (f *StudentFlow) List(ctx context.Context) error {
	students, err := f.api.CourseStudents(ctx, f.courseID)
	if err != nil {
		return err
	}
	f.view.RenderStudents(students)
	return nil
}

func (f *StudentFlow) StartAdd() *models.Enrollment {
	f.editor.startCompose("")
	return &models.Enrollment{}
}

func (f *StudentFlow) Cancel() {
	f.editor.cancel()
}

func (f *StudentFlow) Submit(ctx context.Context, enrollment models.Enrollment) error {
	if err := enrollment.Validate(); err != nil {
		return err
	}

	gen, err := f.editor.beginSubmit()
	if err != nil {
		return err
	}

	err = f.api.EnrollStudent(ctx, f.courseID, enrollment)

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

func (f *StudentFlow) Remove(ctx context.Context, studentID string) error {
	if !f.confirm.Confirm("Remove this student from the course?") {
		return nil
	}

	if err := f.api.RemoveStudent(ctx, f.courseID, studentID); err != nil {
		return err
	}
	return f.List(ctx)
}
