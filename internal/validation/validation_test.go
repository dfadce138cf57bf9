package validation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etharaai/workforce-api/internal/errs"
	"github.com/etharaai/workforce-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Status string `json:"status" validate:"omitempty,oneof=Present Absent"`
}

func (r *registerRequest) Validate() error {
	return validation.Struct(r)
}

type customRuleRequest struct{}

func (r *customRuleRequest) Validate() error {
	return validation.CustomValidationErrors{
		{Field: "window", Message: "must not be in the past"},
	}
}

func newContext(t *testing.T, body string) echo.Context {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, `{"name": "Jordan", "email": "jordan@x.com"}`)

	payload := new(registerRequest)
	require.NoError(t, validation.BindAndValidate(c, payload))
	require.Equal(t, "Jordan", payload.Name)
	require.Equal(t, "jordan@x.com", payload.Email)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(t, `{"name": "Jordan",`)

	err := validation.BindAndValidate(c, new(registerRequest))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(t, `{"email": "not-an-email", "status": "Late"}`)

	err := validation.BindAndValidate(c, new(registerRequest))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Equal(t, "Validation failed", httpErr.Message)

	require.Contains(t, httpErr.Errors, errs.FieldError{Field: "name", Error: "is required"})
	require.Contains(t, httpErr.Errors, errs.FieldError{Field: "email", Error: "must be a valid email address"})
	require.Contains(t, httpErr.Errors, errs.FieldError{Field: "status", Error: "must be one of: Present Absent"})
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(t, "")

	err := validation.BindAndValidate(c, new(customRuleRequest))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Contains(t, httpErr.Errors, errs.FieldError{Field: "window", Error: "must not be in the past"})
}
