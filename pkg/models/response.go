package models

import "fmt"

// Response is the uniform envelope returned by the HTTP API and the internal
// command helpers. Not-found and similar expected failures travel as
// Success=false with an error message, never as a panic or transport error.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK returns a successful envelope carrying data.
func OK(data any) *Response {
	return &Response{Success: true, Data: data}
}

// Fail returns a failed envelope with an error message.
func Fail(format string, args ...any) *Response {
	return &Response{Success: false, Error: fmt.Sprintf(format, args...)}
}

// WithRaise converts a failed envelope into a Go error. Callers choose
// whether Success=false is fatal; this is the only propagation lever.
func (r *Response) WithRaise() (*Response, error) {
	if !r.Success {
		return r, fmt.Errorf("API call failed: %s", r.Error)
	}
	return r, nil
}
