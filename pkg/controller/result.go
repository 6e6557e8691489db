package controller

import "github.com/goliatone/go-orderform/pkg/order"

// FailureMessage is shown when a submission is rejected.
const FailureMessage = "Something went wrong, please try again!"

// Status tags a SubmissionResult.
type Status string

const (
	StatusNone    Status = ""
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// SubmissionResult is the outcome of the last submission. Snapshot is only
// populated for StatusSuccess.
type SubmissionResult struct {
	Status   Status          `json:"status"`
	Snapshot order.FormState `json:"snapshot,omitempty"`
}

// Success wraps a snapshot of the submitted form.
func Success(snapshot order.FormState) SubmissionResult {
	return SubmissionResult{Status: StatusSuccess, Snapshot: snapshot.Clone()}
}

// Failure marks a rejected submission.
func Failure() SubmissionResult {
	return SubmissionResult{Status: StatusFailure}
}

// Succeeded reports whether the result carries an accepted order.
func (r SubmissionResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Failed reports whether the last submission was rejected.
func (r SubmissionResult) Failed() bool {
	return r.Status == StatusFailure
}

// Message returns the confirmation for a success, the generic notice for a
// failure, and an empty string when nothing was submitted.
func (r SubmissionResult) Message() string {
	switch r.Status {
	case StatusSuccess:
		return order.FormatConfirmation(r.Snapshot)
	case StatusFailure:
		return FailureMessage
	default:
		return ""
	}
}
