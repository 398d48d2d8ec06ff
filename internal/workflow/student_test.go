package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

type MockStudentAPI struct {
	mock.Mock
}

func (m *MockStudentAPI) CourseStudents(_ context.Context, courseID string) ([]models.Student, error) {
	args := m.Called(courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStudentAPI) EnrollStudent(_ context.Context, courseID string, enrollment models.Enrollment) error {
	args := m.Called(courseID, enrollment)
	return args.Error(0)
}

func (m *MockStudentAPI) RemoveStudent(_ context.Context, courseID, studentID string) error {
	args := m.Called(courseID, studentID)
	return args.Error(0)
}

type studentViewSpy struct {
	rendered [][]models.Student
}

func (v *studentViewSpy) RenderStudents(students []models.Student) {
	v.rendered = append(v.rendered, students)
}

func TestStudentFlow_EnrollThenRefetch(t *testing.T) {
	api := new(MockStudentAPI)
	view := &studentViewSpy{}
	flow := NewStudentFlow(api, view, confirmStub(true), "c1")

	enrollment := *flow.StartAdd()
	enrollment.Email = "new@student.edu"

	api.On("EnrollStudent", "c1", enrollment).Return(nil).Once()
	api.On("CourseStudents", "c1").Return([]models.Student{{ID: "stu1", Email: "new@student.edu"}}, nil).Once()

	require.NoError(t, flow.Submit(context.Background(), enrollment))
	require.Len(t, view.rendered, 1)
	assert.Equal(t, "new@student.edu", view.rendered[0][0].Email)
	api.AssertExpectations(t)
}

func TestStudentFlow_BadEmailBlocksNetwork(t *testing.T) {
	api := new(MockStudentAPI)
	flow := NewStudentFlow(api, &studentViewSpy{}, confirmStub(true), "c1")

	enrollment := *flow.StartAdd()
	enrollment.Email = "not-an-email"

	require.Error(t, flow.Submit(context.Background(), enrollment))
	api.AssertNotCalled(t, "EnrollStudent", mock.Anything, mock.Anything)
}

func TestStudentFlow_SubmitWithoutForm(t *testing.T) {
	api := new(MockStudentAPI)
	flow := NewStudentFlow(api, &studentViewSpy{}, confirmStub(true), "c1")

	err := flow.Submit(context.Background(), models.Enrollment{Email: "a@b.edu"})
	assert.ErrorIs(t, err, ErrNotComposing)
	api.AssertNotCalled(t, "EnrollStudent", mock.Anything, mock.Anything)
}

func TestStudentFlow_EnrollFailureKeepsForm(t *testing.T) {
	api := new(MockStudentAPI)
	view := &studentViewSpy{}
	flow := NewStudentFlow(api, view, confirmStub(true), "c1")

	enrollment := *flow.StartAdd()
	enrollment.Email = "dup@student.edu"

	api.On("EnrollStudent", "c1", enrollment).Return(assert.AnError).Once()
	require.Error(t, flow.Submit(context.Background(), enrollment))
	assert.Empty(t, view.rendered)

	// the form survived: retry without reopening it
	api.On("EnrollStudent", "c1", enrollment).Return(nil).Once()
	api.On("CourseStudents", "c1").Return([]models.Student{}, nil).Once()
	require.NoError(t, flow.Submit(context.Background(), enrollment))
	api.AssertExpectations(t)
}

func TestStudentFlow_RemoveConfirmation(t *testing.T) {
	api := new(MockStudentAPI)
	view := &studentViewSpy{}

	declined := NewStudentFlow(api, view, confirmStub(false), "c1")
	require.NoError(t, declined.Remove(context.Background(), "stu1"))
	api.AssertNotCalled(t, "RemoveStudent", mock.Anything, mock.Anything)

	confirmed := NewStudentFlow(api, view, confirmStub(true), "c1")
	api.On("RemoveStudent", "c1", "stu1").Return(nil).Once()
	api.On("CourseStudents", "c1").Return([]models.Student{}, nil).Once()
	require.NoError(t, confirmed.Remove(context.Background(), "stu1"))
	api.AssertExpectations(t)
}
