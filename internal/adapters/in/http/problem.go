package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ContentTypeProblemJSON is the media type of every error response.
const ContentTypeProblemJSON = "application/problem+json"

// ProblemDetail is an RFC 7807 error body.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithExtension returns a copy, leaving the template's map untouched.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	ext := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		ext[k] = v
	}
	ext[key] = value
	p.Extensions = ext
	return p
}

const (
	TypeValidation       = "/problems/validation-error"
	TypeNotFound         = "/problems/not-found"
	TypeConflict         = "/problems/conflict"
	TypeBadRequest       = "/problems/bad-request"
	TypeMethodNotAllowed = "/problems/method-not-allowed"
	TypeInternal         = "/problems/internal-error"
)

var (
	ErrValidation = ProblemDetail{Type: TypeValidation, Title: "Validation Error", Status: http.StatusBadRequest}
	ErrBadRequest = ProblemDetail{Type: TypeBadRequest, Title: "Bad Request", Status: http.StatusBadRequest}
	ErrNotFound   = ProblemDetail{Type: TypeNotFound, Title: "Resource Not Found", Status: http.StatusNotFound}
	ErrConflict   = ProblemDetail{Type: TypeConflict, Title: "Conflict", Status: http.StatusConflict}
	ErrInternal   = ProblemDetail{Type: TypeInternal, Title: "Internal Server Error", Status: http.StatusInternalServerError}

	ErrMethodNotAllowed = ProblemDetail{
		Type:   TypeMethodNotAllowed,
		Title:  "Method Not Allowed",
		Status: http.StatusMethodNotAllowed,
	}
)

// ErrorMapper turns an error into a problem when it recognises it.
type ErrorMapper func(err error) (ProblemDetail, bool)

// Responder renders errors returned by handlers as problem+json. It is
// installed as echo's HTTPErrorHandler.
type Responder struct {
	mappers []ErrorMapper
	logger  *slog.Logger
}

// NewResponder tries mappers in order, then falls back to DomainErrorMapper
// and echo's own HTTP errors. Anything left over is a 500 with the detail hidden.
func NewResponder(logger *slog.Logger, mappers ...ErrorMapper) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	all := append(append([]ErrorMapper{}, mappers...), DomainErrorMapper, EchoErrorMapper)
	return &Responder{mappers: all, logger: logger.With("component", "http")}
}

func (r *Responder) Problem(err error) ProblemDetail {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		return problem
	}
	for _, mapper := range r.mappers {
		if p, ok := mapper(err); ok {
			return p
		}
	}
	return ErrInternal
}

// HandleError satisfies echo.HTTPErrorHandler.
func (r *Responder) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	problem := r.Problem(err)
	if problem.Status >= http.StatusInternalServerError {
		r.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err.Error(),
		)
	}

	if problem.Instance == "" {
		problem.Instance = c.Request().URL.Path
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(problem.Status)
	} else {
		c.Response().Header().Set(echo.HeaderContentType, ContentTypeProblemJSON)
		writeErr = c.JSON(problem.Status, problem)
	}
	if writeErr != nil {
		r.logger.Error("failed to write problem response", "error", writeErr.Error())
	}
}

// DomainErrorMapper maps the errs taxonomy: validation to 400 with per-field
// messages, not found to 404, unique conflicts to 409.
func DomainErrorMapper(err error) (ProblemDetail, bool) {
	switch {
	case errs.IsValidation(err):
		return ErrValidation.WithExtension("fields", errs.Fields(err)), true
	case errors.Is(err, errs.ErrObjectNotFound):
		p := ErrNotFound
		var nf *errs.ObjectNotFoundError
		if errors.As(err, &nf) {
			p = p.WithDetail(fmt.Sprintf("%s not found", nf.ParamName))
		}
		return p, true
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		p := ErrConflict
		var conflict *errs.ObjectAlreadyExistsError
		if errors.As(err, &conflict) {
			p = p.WithExtension("fields", map[string]string{conflict.ParamName: "already exists"})
		}
		return p, true
	default:
		return ProblemDetail{}, false
	}
}

// EchoErrorMapper covers binding failures, unknown routes and wrong methods.
func EchoErrorMapper(err error) (ProblemDetail, bool) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return ProblemDetail{}, false
	}

	var p ProblemDetail
	switch he.Code {
	case http.StatusNotFound:
		p = ErrNotFound
	case http.StatusMethodNotAllowed:
		p = ErrMethodNotAllowed
	case http.StatusBadRequest:
		p = ErrBadRequest
	default:
		if he.Code >= http.StatusInternalServerError {
			return ErrInternal, true
		}
		p = ProblemDetail{Type: "about:blank", Title: http.StatusText(he.Code), Status: he.Code}
	}

	if msg, ok := he.Message.(string); ok && msg != "" {
		p = p.WithDetail(msg)
	}
	return p, true
}
