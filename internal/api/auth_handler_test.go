package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantStatus    int
		wantEmail     string
		wantErrorBody string
	}{
		{
			name:       "issues token",
			body:       `{"email":"ada@example.com"}`,
			wantStatus: http.StatusOK,
			wantEmail:  "ada@example.com",
		},
		{
			name:       "trims email",
			body:       `{"email":"  ada@example.com "}`,
			wantStatus: http.StatusOK,
			wantEmail:  "ada@example.com",
		},
		{
			name:          "trailing content after body",
			body:          `{"email":"ada@example.com"} extra`,
			wantStatus:    http.StatusBadRequest,
			wantErrorBody: `{"message":"Email is required"}`,
		},
		{
			name:          "missing email",
			body:          `{}`,
			wantStatus:    http.StatusBadRequest,
			wantErrorBody: `{"message":"Email is required"}`,
		},
		{
			name:          "blank email",
			body:          `{"email":"   "}`,
			wantStatus:    http.StatusBadRequest,
			wantErrorBody: `{"message":"Email is required"}`,
		},
		{
			name:          "empty body",
			body:          ``,
			wantStatus:    http.StatusBadRequest,
			wantErrorBody: `{"message":"Email is required"}`,
		},
		{
			name:          "email of wrong type",
			body:          `{"email":42}`,
			wantStatus:    http.StatusBadRequest,
			wantErrorBody: `{"message":"Email is required"}`,
		},
	}

	handler := http.HandlerFunc(NewAuthHandler().Login)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, handler, http.MethodPost, "/auth/login", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantErrorBody != "" {
				assert.JSONEq(t, tc.wantErrorBody, w.Body.String())
				return
			}

			var resp LoginResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantEmail, resp.Email)

			decoded, err := base64.StdEncoding.DecodeString(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, tc.wantEmail, string(decoded))
		})
	}
}

func TestHealth(t *testing.T) {
	w := doRequest(t, http.HandlerFunc(Health), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
