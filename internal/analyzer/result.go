package analyzer

import "fmt"

// RequestFailed is the only failure variant. Every dispatch error collapses into it.
type RequestFailed struct {
	Message string
}

func (e *RequestFailed) Error() string {
	return e.Message
}

// Result holds either the model's reply or a RequestFailed.
type Result struct {
	Text   string
	Failed *RequestFailed
}

func success(text string) Result {
	return Result{Text: text}
}

func failure(err error) Result {
	return Result{Failed: &RequestFailed{Message: err.Error()}}
}

func (r Result) OK() bool {
	return r.Failed == nil
}

// String renders the result for the operator.
func (r Result) String() string {
	if r.Failed != nil {
		return fmt.Sprintf("An error occurred: %s", r.Failed.Message)
	}
	return r.Text
}
