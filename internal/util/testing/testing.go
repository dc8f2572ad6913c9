package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type TestResponse struct {
	StatusCode int
	Body       []byte
}

type RequestOptions struct {
	Method         string
	URL            string
	AuthToken      string
	Body           any
	ExpectedStatus int
}

// MakeRequest performs a request against the test router and fails the test
// when the status does not match ExpectedStatus.
func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) *TestResponse {
	t.Helper()

	var requestBody *bytes.Buffer
	if options.Body != nil {
		bodyJSON, err := json.Marshal(options.Body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(options.Method, options.URL, requestBody)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	if options.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if options.AuthToken != "" {
		req.Header.Set("Authorization", options.AuthToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if options.ExpectedStatus != 0 && w.Code != options.ExpectedStatus {
		t.Fatalf(
			"unexpected status for %s %s: got %d, want %d, body: %s",
			options.Method, options.URL, w.Code, options.ExpectedStatus, w.Body.String(),
		)
	}

	return &TestResponse{
		StatusCode: w.Code,
		Body:       w.Body.Bytes(),
	}
}

func MakeRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	options RequestOptions,
	target any,
) *TestResponse {
	t.Helper()

	resp := MakeRequest(t, router, options)
	if err := json.Unmarshal(resp.Body, target); err != nil {
		t.Fatalf("failed to unmarshal response body %q: %v", string(resp.Body), err)
	}

	return resp
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "GET",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	expectedStatus int,
	target any,
) *TestResponse {
	t.Helper()

	return MakeRequestAndUnmarshal(t, router, RequestOptions{
		Method:         "GET",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	}, target)
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "POST",
		URL:            url,
		AuthToken:      authToken,
		Body:           body,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	body any,
	expectedStatus int,
	target any,
) *TestResponse {
	t.Helper()

	return MakeRequestAndUnmarshal(t, router, RequestOptions{
		Method:         "POST",
		URL:            url,
		AuthToken:      authToken,
		Body:           body,
		ExpectedStatus: expectedStatus,
	}, target)
}

func MakePutRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	body any,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "PUT",
		URL:            url,
		AuthToken:      authToken,
		Body:           body,
		ExpectedStatus: expectedStatus,
	})
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	body any,
	expectedStatus int,
	target any,
) *TestResponse {
	t.Helper()

	return MakeRequestAndUnmarshal(t, router, RequestOptions{
		Method:         "PUT",
		URL:            url,
		AuthToken:      authToken,
		Body:           body,
		ExpectedStatus: expectedStatus,
	}, target)
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authToken string,
	expectedStatus int,
) *TestResponse {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "DELETE",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}
