package sales

import "fmt"

// Error taxonomy for a sale request. The handler layer maps these onto
// status codes: validation 400, not-found 404, dependency 500.

type ValidationError struct{ Msg string }

func (e ValidationError) Error() string { return e.Msg }

type NotFoundError struct{ Msg string }

func (e NotFoundError) Error() string { return e.Msg }

// DependencyError marks a failed mandatory call to an external
// collaborator. There is no retry; the request fails.
type DependencyError struct {
	Op  string
	Err error
}

func (e DependencyError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e DependencyError) Unwrap() error { return e.Err }
