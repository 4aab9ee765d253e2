package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func contextWithAuthHeader(header string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/highlights", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestCredentialFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{name: "bearer scheme", header: "Bearer phm_live_abc", want: "phm_live_abc", wantOK: true},
		{name: "token scheme", header: "Token phm_live_abc", want: "phm_live_abc", wantOK: true},
		{name: "scheme is case-insensitive", header: "BEARER phm_live_abc", want: "phm_live_abc", wantOK: true},
		{name: "credential whitespace trimmed", header: "Bearer  phm_live_abc ", want: "phm_live_abc", wantOK: true},
		{name: "missing header", header: "", wantOK: false},
		{name: "unknown scheme", header: "Basic dXNlcjpwYXNz", wantOK: false},
		{name: "scheme only", header: "Bearer", wantOK: false},
		{name: "blank credential", header: "Bearer   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credential, ok := credentialFromHeader(contextWithAuthHeader(tt.header))

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, credential)
		})
	}
}
