package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestResponder_Problem(t *testing.T) {
	r := NewResponder(nil)

	tests := []struct {
		name   string
		err    error
		status int
		typ    string
	}{
		{"joined validation", errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsRequiredError("address")),
			http.StatusBadRequest, TypeValidation},
		{"wrapped not found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("order", "x")),
			http.StatusNotFound, TypeNotFound},
		{"conflict", errs.NewObjectAlreadyExistsError("contact_info", "x"), http.StatusConflict, TypeConflict},
		{"echo 405", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, TypeMethodNotAllowed},
		{"echo 503", echo.ErrServiceUnavailable, http.StatusInternalServerError, TypeInternal},
		{"problem passthrough", ErrConflict.WithDetail("x"), http.StatusConflict, TypeConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, TypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := r.Problem(tt.err)
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.typ, p.Type)
		})
	}
}

func TestResponder_CustomMapperRunsFirst(t *testing.T) {
	teapot := ProblemDetail{Type: "about:blank", Title: "Teapot", Status: http.StatusTeapot}
	r := NewResponder(nil, func(err error) (ProblemDetail, bool) {
		return teapot, errors.Is(err, errs.ErrObjectNotFound)
	})

	assert.Equal(t, teapot, r.Problem(errs.NewObjectNotFoundError("order", "x")))
}

func TestProblemDetail_WithExtensionCopies(t *testing.T) {
	p := ErrValidation.WithExtension("fields", map[string]string{"name": "required"})

	assert.Nil(t, ErrValidation.Extensions)
	assert.Contains(t, p.Extensions, "fields")
}
