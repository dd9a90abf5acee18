package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status   string            `json:"status"`
	Error    string            `json:"error,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// FieldError reports a single form-control message next to the summary.
func FieldError(field, msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
		Fields: map[string]string{field: msg},
	}
}

// Redirect is used for authorization and not-found failures the SPA resolves by navigating away.
func Redirect(msg, to string) Response {
	return Response{
		Status:   StatusError,
		Error:    msg,
		Redirect: to,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string
	fields := make(map[string]string, len(errs))

	for _, err := range errs {
		var msg string

		switch err.ActualTag() {
		case "required":
			msg = fmt.Sprintf("field %s is a required field", err.Field())
		case "url", "http_url":
			msg = fmt.Sprintf("field %s is not a valid URL", err.Field())
		case "email":
			msg = fmt.Sprintf("field %s is not a valid email", err.Field())
		case "min", "gte":
			msg = fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param())
		case "max", "lte":
			msg = fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param())
		default:
			msg = fmt.Sprintf("field %s is not valid", err.Field())
		}

		errMsgs = append(errMsgs, msg)
		if _, ok := fields[err.Field()]; !ok {
			fields[err.Field()] = msg
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMsgs, ", "),
		Fields: fields,
	}
}
