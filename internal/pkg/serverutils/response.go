package serverutils

import "style-match-be/internal/pkg/apperror"

// ErrorBody is the JSON shape of every error answer.
type ErrorBody struct {
	Error    string      `json:"error"`
	Message  string      `json:"message,omitempty"`
	Details  interface{} `json:"details,omitempty"`
	Hint     string      `json:"hint,omitempty"`
	Required []string    `json:"required,omitempty"`
	Action   string      `json:"action,omitempty"`
}

func ErrorResponse(err *apperror.Error) ErrorBody {
	body := ErrorBody{
		Error:    err.Message,
		Details:  err.Details,
		Hint:     err.Hint,
		Required: err.Required,
		Action:   err.Action,
	}
	body.Message = err.Cause()
	return body
}
