package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/its-api/internal/service"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "not found",
			err:      fmt.Errorf("Student %w", service.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "Student not found",
		},
		{
			name:     "invalid credentials",
			err:      service.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Invalid credentials",
		},
		{
			name:     "bare validation",
			err:      fmt.Errorf("%w: bad input", service.ErrValidation),
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation failed: bad input",
		},
		{
			name:     "storage",
			err:      fmt.Errorf("%w: insert: %w", service.ErrStorage, errors.New("UNIQUE constraint failed")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to do the thing",
		},
		{
			name:     "unclassified",
			err:      errors.New("surprise"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to do the thing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteServiceError(rec, tt.err, "Failed to do the thing")

			assert.Equal(t, tt.wantCode, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, StatusError, body.Status)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestValidationError(t *testing.T) {
	empty := ""
	type input struct {
		Name  string  `validate:"required"`
		Title *string `validate:"required,min=1"`
		Kind  string  `validate:"oneof=a b"`
		Age   int     `validate:"max=18"`
	}

	err := validator.New().Struct(input{Title: &empty, Kind: "c", Age: 30})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	got := ValidationError(errs)
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t,
		"field Name is required, field Title must not be empty, field Kind must be one of: a b, field Age is invalid",
		got.Error)
}

func TestWriteJSON_Message(t *testing.T) {
	rec := httptest.NewRecorder()
	msg := OK("done")
	require.NoError(t, WriteJSON(rec, http.StatusCreated, msg))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok","message":"done"}`, rec.Body.String())
}
