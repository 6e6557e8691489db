// Package controller implements the order form controller: it owns one
// FormState, applies field and topping events to it, recomputes validation
// after every change, and turns submissions into a SubmissionResult.
//
// A Controller is single-owner. Each event runs to completion before the next
// one is applied; callers that share a controller across goroutines must
// serialise access themselves. Observers registered with Subscribe are
// notified synchronously after every revalidation and submission.
package controller
