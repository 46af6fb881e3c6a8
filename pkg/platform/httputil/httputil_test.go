package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "convene/pkg/domain-errors"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", dErrors.New(dErrors.CodeValidation, "blank name"), http.StatusBadRequest, "validation"},
		{"bad request", dErrors.New(dErrors.CodeBadRequest, "bad json"), http.StatusBadRequest, "bad_request"},
		{"not found", dErrors.New(dErrors.CodeNotFound, "no meeting"), http.StatusNotFound, "not_found"},
		{"conflict", dErrors.New(dErrors.CodeConflict, "duplicate"), http.StatusConflict, "conflict"},
		{"invalid state", dErrors.New(dErrors.CodeInvalidState, "finished"), http.StatusConflict, "invalid_state"},
		{"unauthorized", dErrors.New(dErrors.CodeUnauthorized, "expired"), http.StatusUnauthorized, "unauthorized"},
		{"invalid credential", dErrors.New(dErrors.CodeInvalidCredential, "invalid ticket"), http.StatusUnauthorized, "invalid_credential"},
		{"internal", dErrors.New(dErrors.CodeInternal, "boom"), http.StatusInternalServerError, "internal_error"},
		{"uncoded", errors.New("plain failure"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantError, decodeBody(t, rec)["error"])
		})
	}
}

func TestWriteError_DescriptionSuppression(t *testing.T) {
	t.Run("includes description for client errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeValidation, "name is blank"))
		assert.Equal(t, "name is blank", decodeBody(t, rec)["error_description"])
	})

	t.Run("omits description for internal errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeInternal, "pq: connection refused"))
		_, present := decodeBody(t, rec)["error_description"]
		assert.False(t, present)
	})

	// A redemption response must not reveal whether the code existed or was
	// already spent.
	t.Run("omits description for credential errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeInvalidCredential, "code already redeemed"))
		_, present := decodeBody(t, rec)["error_description"]
		assert.False(t, present)
	})
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestDecode(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"assembly"}`))
		rec := httptest.NewRecorder()

		got, ok := Decode[payload](rec, req, nil, req.Context())
		require.True(t, ok)
		assert.Equal(t, "assembly", got.Name)
	})

	t.Run("malformed body writes bad_request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		_, ok := Decode[payload](rec, req, nil, req.Context())
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decodeBody(t, rec)["error"])
	})
}
