package test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Request is a helper method to simplify making a HTTP request for tests.
//
// A non-nil form is sent as an application/x-www-form-urlencoded body.
func Request(t *testing.T, handler http.Handler, method, reqURL string, form url.Values, headers ...map[string]string) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequest(method, reqURL, body)
	require.NoError(t, err, "Request could not be created")

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	return recorder
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

// Cookies returns the cookies set by the response as a single Cookie header
// value to be sent with the next request.
func Cookies(r *httptest.ResponseRecorder) string {
	cookies := r.Result().Cookies()

	values := make([]string, 0, len(cookies))
	for _, c := range cookies {
		values = append(values, c.Name+"="+c.Value)
	}

	return strings.Join(values, "; ")
}
