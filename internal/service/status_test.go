package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string      { return &s }
func boolPtr(b bool) *bool         { return &b }
func floatPtr(f float64) *float64  { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func TestDeriveAssignmentStatusUpstreamWins(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	got := DeriveAssignmentStatus(AssignmentStatusInput{
		Status:      strPtr("Graded"),
		Display:     strPtr("Graded - 95/100"),
		LateFlag:    boolPtr(false),
		SubmittedAt: timePtr(deadline.Add(time.Hour)),
		Deadline:    timePtr(deadline),
	})
	assert.Equal(t, "Graded", got.Status)
	require.NotNil(t, got.Late)
	assert.False(t, *got.Late)
	assert.Equal(t, "Graded - 95/100", got.Display)
}

func TestDeriveAssignmentStatusFromTimestamps(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	late := DeriveAssignmentStatus(AssignmentStatusInput{
		SubmittedAt: timePtr(deadline.Add(time.Minute)),
		Deadline:    timePtr(deadline),
	})
	assert.Equal(t, StatusSubmitted, late.Status)
	require.NotNil(t, late.Late)
	assert.True(t, *late.Late)
	assert.Equal(t, "Submitted (Late)", late.Display)

	atDeadline := DeriveAssignmentStatus(AssignmentStatusInput{
		SubmittedAt: timePtr(deadline),
		Deadline:    timePtr(deadline),
	})
	require.NotNil(t, atDeadline.Late)
	assert.False(t, *atDeadline.Late)
	assert.Equal(t, StatusSubmitted, atDeadline.Display)
}

func TestDeriveAssignmentStatusNoSubmission(t *testing.T) {
	got := DeriveAssignmentStatus(AssignmentStatusInput{
		Deadline: timePtr(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
	assert.Equal(t, StatusNotSubmitted, got.Status)
	assert.Nil(t, got.Late)
	assert.Equal(t, StatusNotSubmitted, got.Display)
}

func TestDeriveQuizStatus(t *testing.T) {
	cases := []struct {
		name string
		in   QuizStatusInput
		want string
	}{
		{"upstream wins", QuizStatusInput{Completion: strPtr("In Progress"), HasResponse: true}, "In Progress"},
		{"no response", QuizStatusInput{}, StatusNotTaken},
		{"passed at exact mark", QuizStatusInput{HasResponse: true, Score: floatPtr(60), PassScore: floatPtr(60)}, StatusPassed},
		{"failed below mark", QuizStatusInput{HasResponse: true, Score: floatPtr(59.5), PassScore: floatPtr(60)}, StatusFailed},
		{"completed without pass mark", QuizStatusInput{HasResponse: true, Score: floatPtr(80)}, StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveQuizStatus(tc.in)
			assert.Equal(t, tc.want, got.Completion)
			assert.Equal(t, tc.want, got.Display)
		})
	}
}

func TestDeriveQuizStatusKeepsUpstreamDisplay(t *testing.T) {
	got := DeriveQuizStatus(QuizStatusInput{
		HasResponse: true,
		Score:       floatPtr(90),
		PassScore:   floatPtr(50),
		Display:     strPtr("Passed - 90%"),
	})
	assert.Equal(t, StatusPassed, got.Completion)
	assert.Equal(t, "Passed - 90%", got.Display)
}
