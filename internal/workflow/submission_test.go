package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

type MockSubmissionAPI struct {
	mock.Mock
}

func (m *MockSubmissionAPI) Submissions(_ context.Context, assignmentID string) ([]models.Submission, error) {
	args := m.Called(assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionAPI) GradeSubmission(_ context.Context, submissionID string, draft models.GradeDraft) (*models.Grade, error) {
	args := m.Called(submissionID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Grade), args.Error(1)
}

func (m *MockSubmissionAPI) UpdateGrade(_ context.Context, gradeID string, draft models.GradeDraft) (*models.Grade, error) {
	args := m.Called(gradeID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Grade), args.Error(1)
}

type submissionViewSpy struct {
	rendered [][]models.Submission
}

func (v *submissionViewSpy) RenderSubmissions(submissions []models.Submission) {
	v.rendered = append(v.rendered, submissions)
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestSubmissionFlow_GradeRejectsNonNumericScore(t *testing.T) {
	api := new(MockSubmissionAPI)
	flow := NewSubmissionFlow(api, &submissionViewSpy{})

	for _, score := range []string{"", "five", "4.5"} {
		err := flow.Grade(context.Background(), "a1", "s1", score, "nice")
		assert.ErrorIs(t, err, ErrScoreRequired, "score %q", score)
	}

	api.AssertNotCalled(t, "Submissions", mock.Anything)
	api.AssertNotCalled(t, "GradeSubmission", mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "UpdateGrade", mock.Anything, mock.Anything)
}

func TestSubmissionFlow_GradeCreatesWhenUngraded(t *testing.T) {
	api := new(MockSubmissionAPI)
	view := &submissionViewSpy{}
	flow := NewSubmissionFlow(api, view)

	ungraded := models.Submission{ID: "s1", AssignmentID: "a1", StudentID: "stu1"}
	graded := ungraded
	graded.Grade = intPtr(8)
	graded.GradeComment = strPtr("good work")

	draft := models.GradeDraft{Score: 8, Comment: "good work"}
	api.On("Submissions", "a1").Return([]models.Submission{ungraded}, nil).Once()
	api.On("GradeSubmission", "s1", draft).Return(&models.Grade{ID: "g1", Score: 8}, nil).Once()
	api.On("Submissions", "a1").Return([]models.Submission{graded}, nil).Once()

	require.NoError(t, flow.Grade(context.Background(), "a1", "s1", " 8 ", "good work"))

	require.Len(t, view.rendered, 1, "grading must refetch and rerender the list")
	got := view.rendered[0][0]
	require.NotNil(t, got.Grade)
	require.NotNil(t, got.GradeComment)
	assert.Equal(t, 8, *got.Grade)
	assert.Equal(t, "good work", *got.GradeComment, "score and comment travel together")

	api.AssertNotCalled(t, "UpdateGrade", mock.Anything, mock.Anything)
	api.AssertExpectations(t)
}

func TestSubmissionFlow_GradeUpdatesWhenAlreadyGraded(t *testing.T) {
	api := new(MockSubmissionAPI)
	view := &submissionViewSpy{}
	flow := NewSubmissionFlow(api, view)

	already := models.Submission{
		ID:           "s1",
		AssignmentID: "a1",
		Grade:        intPtr(3),
		GradeID:      strPtr("g1"),
		GradeComment: strPtr("redo this"),
	}
	regraded := already
	regraded.Grade = intPtr(9)
	regraded.GradeComment = strPtr("much better")

	draft := models.GradeDraft{Score: 9, Comment: "much better"}
	api.On("Submissions", "a1").Return([]models.Submission{already}, nil).Once()
	api.On("UpdateGrade", "g1", draft).Return(&models.Grade{ID: "g1", Score: 9}, nil).Once()
	api.On("Submissions", "a1").Return([]models.Submission{regraded}, nil).Once()

	require.NoError(t, flow.Grade(context.Background(), "a1", "s1", "9", "much better"))

	require.Len(t, view.rendered, 1)
	assert.Equal(t, 9, *view.rendered[0][0].Grade)

	api.AssertNotCalled(t, "GradeSubmission", mock.Anything, mock.Anything)
	api.AssertExpectations(t)
}

func TestSubmissionFlow_GradeFallsBackToCreateWithoutGradeID(t *testing.T) {
	// Some backends report the score but not the grade record id; the
	// create endpoint upserts, so that path still works.
	api := new(MockSubmissionAPI)
	flow := NewSubmissionFlow(api, &submissionViewSpy{})

	noID := models.Submission{ID: "s1", AssignmentID: "a1", Grade: intPtr(5)}
	draft := models.GradeDraft{Score: 7, Comment: ""}
	api.On("Submissions", "a1").Return([]models.Submission{noID}, nil).Once()
	api.On("GradeSubmission", "s1", draft).Return(&models.Grade{ID: "g2", Score: 7}, nil).Once()
	api.On("Submissions", "a1").Return([]models.Submission{noID}, nil).Once()

	require.NoError(t, flow.Grade(context.Background(), "a1", "s1", "7", ""))
	api.AssertNotCalled(t, "UpdateGrade", mock.Anything, mock.Anything)
	api.AssertExpectations(t)
}

func TestSubmissionFlow_GradeVanishedSubmission(t *testing.T) {
	api := new(MockSubmissionAPI)
	flow := NewSubmissionFlow(api, &submissionViewSpy{})

	api.On("Submissions", "a1").Return([]models.Submission{{ID: "other"}}, nil).Once()

	err := flow.Grade(context.Background(), "a1", "s1", "5", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer exists")

	api.AssertNotCalled(t, "GradeSubmission", mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "UpdateGrade", mock.Anything, mock.Anything)
	api.AssertExpectations(t)
}

func TestSubmissionFlow_GradeFailureSkipsRefetch(t *testing.T) {
	api := new(MockSubmissionAPI)
	view := &submissionViewSpy{}
	flow := NewSubmissionFlow(api, view)

	api.On("Submissions", "a1").Return([]models.Submission{{ID: "s1"}}, nil).Once()
	api.On("GradeSubmission", "s1", mock.Anything).Return(nil, assert.AnError).Once()

	require.Error(t, flow.Grade(context.Background(), "a1", "s1", "5", ""))
	assert.Empty(t, view.rendered)
	api.AssertExpectations(t)
}
