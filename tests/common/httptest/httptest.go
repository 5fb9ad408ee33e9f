//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
)

// PerformRequest sends a request with the given query parameters; the
// voucher API takes all mutation input from the query string.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, query url.Values) *httptest.ResponseRecorder {
	t.Helper()

	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Query builds url.Values from alternating key/value pairs.
func Query(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return q
}
