package service

import "time"

// Canonical status strings shared by the assignment and quiz views.
const (
	StatusSubmitted    = "Submitted"
	StatusNotSubmitted = "Not Submitted"
	StatusNotTaken     = "Not Taken"
	StatusCompleted    = "Completed"
	StatusPassed       = "Passed"
	StatusFailed       = "Failed"

	lateSuffix = " (Late)"
)

// AssignmentStatusInput feeds the assignment status derivation. All fields
// come straight off the decoded row; nil means the column was NULL.
type AssignmentStatusInput struct {
	Status      *string
	Display     *string
	LateFlag    *bool
	SubmittedAt *time.Time
	Deadline    *time.Time
}

// AssignmentStatus is the derived submission state.
type AssignmentStatus struct {
	Status  string
	Late    *bool
	Display string
}

// DeriveAssignmentStatus fills in submission state the grading store did
// not record. Upstream values always win: a stored status, late flag or
// display string is passed through untouched. Lateness is computed only
// when both timestamps exist; submitting exactly at the deadline is on
// time.
func DeriveAssignmentStatus(in AssignmentStatusInput) AssignmentStatus {
	status := StatusNotSubmitted
	switch {
	case in.Status != nil && *in.Status != "":
		status = *in.Status
	case in.SubmittedAt != nil:
		status = StatusSubmitted
	}

	late := in.LateFlag
	if late == nil && in.SubmittedAt != nil && in.Deadline != nil {
		l := in.SubmittedAt.After(*in.Deadline)
		late = &l
	}

	display := status
	if late != nil && *late {
		display = status + lateSuffix
	}
	if in.Display != nil && *in.Display != "" {
		display = *in.Display
	}

	return AssignmentStatus{Status: status, Late: late, Display: display}
}

// QuizStatusInput feeds the quiz completion derivation.
type QuizStatusInput struct {
	Completion  *string
	Display     *string
	HasResponse bool
	Score       *float64
	PassScore   *float64
}

// QuizStatus is the derived completion state. Completion is always
// populated; a student with no response row reads "Not Taken".
type QuizStatus struct {
	Completion string
	Display    string
}

// DeriveQuizStatus resolves the completion status for one quiz row. A
// recorded upstream status wins; otherwise the status falls out of
// response presence and, when both score and pass mark exist, the
// pass/fail comparison (meeting the pass mark exactly passes).
func DeriveQuizStatus(in QuizStatusInput) QuizStatus {
	completion := StatusNotTaken
	switch {
	case in.Completion != nil && *in.Completion != "":
		completion = *in.Completion
	case !in.HasResponse:
		completion = StatusNotTaken
	case in.Score != nil && in.PassScore != nil:
		if *in.Score >= *in.PassScore {
			completion = StatusPassed
		} else {
			completion = StatusFailed
		}
	default:
		completion = StatusCompleted
	}

	display := completion
	if in.Display != nil && *in.Display != "" {
		display = *in.Display
	}

	return QuizStatus{Completion: completion, Display: display}
}
