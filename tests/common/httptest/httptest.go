//go:build unit

package httptest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON. A non-empty sessionToken goes out as a bearer header.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()
	return PerformRequestWithCookies(t, router, method, path, body, nil, sessionToken)
}

// PerformRequestWithCookies is PerformRequest plus request cookies, typically the admin session.
func PerformRequestWithCookies(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+sessionToken)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	return serve(router, req)
}

// PerformRawRequest sends body verbatim, for payloads that are not valid JSON.
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return serve(router, req)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
