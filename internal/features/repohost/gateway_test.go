package repohost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"projecthub/internal/util/logger"

	"github.com/stretchr/testify/assert"
)

func newTestGateway(baseURL string, timeout time.Duration) *CollaboratorGateway {
	return NewCollaboratorGateway(baseURL, timeout, logger.GetLogger())
}

func Test_AddCollaborator_WhenHostReturns2xx_ReturnsTrue(t *testing.T) {
	var gotMethod, gotPath, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL, 2*time.Second)

	ok := gateway.AddCollaborator(context.Background(), "acme", "delivery", "alice", "token-123")

	assert.True(t, ok)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/repos/acme/delivery/collaborators/alice", gotPath)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func Test_DeleteCollaborator_WhenHostReturns204_ReturnsTrue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL, 2*time.Second)

	assert.True(t, gateway.DeleteCollaborator(context.Background(), "acme", "delivery", "alice", "token-123"))
}

func Test_DeleteCollaborator_WhenHostReturnsNon2xx_ReturnsFalse(t *testing.T) {
	statuses := []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError}

	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))

		gateway := newTestGateway(server.URL, 2*time.Second)
		ok := gateway.DeleteCollaborator(context.Background(), "acme", "delivery", "alice", "token-123")
		server.Close()

		assert.False(t, ok, "status %d must degrade to false", status)
	}
}

func Test_DeleteCollaborator_WhenHostUnreachable_ReturnsFalse(t *testing.T) {
	gateway := newTestGateway("http://127.0.0.1:1", 500*time.Millisecond)

	assert.False(t, gateway.DeleteCollaborator(context.Background(), "acme", "delivery", "alice", "token-123"))
}

func Test_DeleteCollaborator_WhenHostHangs_TimesOutFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL, 300*time.Millisecond)

	start := time.Now()
	ok := gateway.DeleteCollaborator(context.Background(), "acme", "delivery", "alice", "token-123")

	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
}

func Test_DoCollaboratorRequest_WhenCoordinatesBlank_ReturnsFalseWithoutCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL, time.Second)

	assert.False(t, gateway.AddCollaborator(context.Background(), "", "delivery", "alice", "t"))
	assert.False(t, gateway.AddCollaborator(context.Background(), "acme", "", "alice", "t"))
	assert.False(t, gateway.AddCollaborator(context.Background(), "acme", "delivery", "", "t"))
	assert.False(t, called)
}
