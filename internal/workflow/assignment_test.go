package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

type MockAssignmentAPI struct {
	mock.Mock
}

func (m *MockAssignmentAPI) Assignments(_ context.Context, courseID string) ([]models.Assignment, error) {
	args := m.Called(courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Assignment), args.Error(1)
}

func (m *MockAssignmentAPI) CreateAssignment(_ context.Context, courseID string, draft models.AssignmentDraft) (*models.Assignment, error) {
	args := m.Called(courseID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *MockAssignmentAPI) UpdateAssignment(_ context.Context, assignmentID string, draft models.AssignmentDraft) (*models.Assignment, error) {
	args := m.Called(assignmentID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *MockAssignmentAPI) DeleteAssignment(_ context.Context, assignmentID string) error {
	args := m.Called(assignmentID)
	return args.Error(0)
}

type assignmentViewSpy struct {
	rendered [][]models.Assignment
}

func (v *assignmentViewSpy) RenderAssignments(assignments []models.Assignment) {
	v.rendered = append(v.rendered, assignments)
}

func TestAssignmentFlow_CreateDefaultsMaxScore(t *testing.T) {
	api := new(MockAssignmentAPI)
	flow := NewAssignmentFlow(api, &assignmentViewSpy{}, confirmStub(true), "c1")

	draft := flow.StartCreate()
	assert.Equal(t, 100, draft.MaxScore, "a blank form starts at the conventional maximum")
}

func TestAssignmentFlow_EditKeepsDeadline(t *testing.T) {
	api := new(MockAssignmentAPI)
	view := &assignmentViewSpy{}
	flow := NewAssignmentFlow(api, view, confirmStub(true), "c1")

	deadline := time.Date(2025, 10, 1, 23, 59, 0, 0, time.UTC)
	existing := models.Assignment{ID: "a1", CourseID: "c1", Title: "Homework 1", MaxScore: 50, Deadline: &deadline}
	api.On("Assignments", "c1").Return([]models.Assignment{existing}, nil).Once()

	draft, err := flow.StartEdit(context.Background(), "a1")
	require.NoError(t, err)
	require.NotNil(t, draft)
	require.NotNil(t, draft.Deadline)
	assert.True(t, draft.Deadline.Equal(deadline))
	assert.Equal(t, 50, draft.MaxScore)

	draft.Title = "Homework 1 (revised)"
	api.On("UpdateAssignment", "a1", *draft).Return(&existing, nil).Once()
	api.On("Assignments", "c1").Return([]models.Assignment{existing}, nil).Once()

	require.NoError(t, flow.Submit(context.Background(), *draft))
	api.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
	api.AssertExpectations(t)
}

func TestAssignmentFlow_ZeroMaxScoreRejectedLocally(t *testing.T) {
	api := new(MockAssignmentAPI)
	flow := NewAssignmentFlow(api, &assignmentViewSpy{}, confirmStub(true), "c1")

	draft := *flow.StartCreate()
	draft.Title = "Quiz"
	draft.MaxScore = 0

	require.Error(t, flow.Submit(context.Background(), draft))
	api.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
}
