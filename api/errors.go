package api

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProblemDetail is the RFC 7807 body every failed request answers with.
// Instance carries the request path that failed.
type ProblemDetail struct {
	Type     string        `json:"type,omitempty" validate:"uri"`
	Status   int           `json:"status,omitempty"`
	Title    string        `json:"title,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty" validate:"uri"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at the query parameter that failed validation.
type ErrorDetail struct {
	Detail  string `json:"detail"`
	Pointer string `json:"pointer"`
}

type ProblemOption func(*ProblemDetail)

func NewProblemDetail(options ...ProblemOption) ProblemDetail {
	var problem ProblemDetail
	for _, apply := range options {
		apply(&problem)
	}
	return problem
}

func WithType(t string) ProblemOption {
	return func(p *ProblemDetail) { p.Type = t }
}

func WithStatus(s int) ProblemOption {
	return func(p *ProblemDetail) { p.Status = s }
}

func WithTitle(t string) ProblemOption {
	return func(p *ProblemDetail) { p.Title = t }
}

func WithDetail(d string) ProblemOption {
	return func(p *ProblemDetail) { p.Detail = d }
}

func WithInstance(i string) ProblemOption {
	return func(p *ProblemDetail) { p.Instance = i }
}

func WithErrors(e []ErrorDetail) ProblemOption {
	return func(p *ProblemDetail) { p.Errors = e }
}

// NewValidationProblem reports a rejected hardware filter.
func NewValidationProblem(path string, err error) ProblemDetail {
	return NewProblemDetail(
		WithStatus(http.StatusBadRequest),
		WithTitle("Input Validation Error"),
		WithDetail("The hardware filter has invalid query parameters."),
		WithInstance(path),
		WithErrors(queryErrors(err)),
	)
}

// NewUnavailableProblem is answered until a refresh has produced a snapshot.
// The detail is the last refresh error when there is one.
func NewUnavailableProblem(path string, err error) ProblemDetail {
	detail := "No hardware snapshot has been fetched yet."
	if err != nil {
		detail = err.Error()
	}
	return NewProblemDetail(
		WithStatus(http.StatusServiceUnavailable),
		WithTitle("Snapshot Unavailable"),
		WithDetail(detail),
		WithInstance(path),
	)
}

// queryErrors turns binding failures into one pointer per query parameter.
func queryErrors(err error) []ErrorDetail {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	details := make([]ErrorDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := "is invalid"
		switch fe.Tag() {
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "required":
			msg = "is required"
		}
		details = append(details, ErrorDetail{
			Detail:  msg,
			Pointer: "#/" + strings.ToLower(fe.Field()),
		})
	}
	return details
}
