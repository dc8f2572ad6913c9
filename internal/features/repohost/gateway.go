package repohost

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// CollaboratorGateway manages collaborators on repositories hosted by an
// external repository host. Outcomes are booleans by contract: local
// membership state is authoritative and a failed external call must never
// surface as an error to the membership path.
type CollaboratorGateway struct {
	baseURL         string
	client          *http.Client
	outboundLimiter *rate.Limiter
	logger          *slog.Logger
}

func NewCollaboratorGateway(
	baseURL string,
	timeout time.Duration,
	logger *slog.Logger,
) *CollaboratorGateway {
	return &CollaboratorGateway{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		// The host rate-limits aggressively; keep bursts of collaborator
		// changes from tripping secondary limits.
		outboundLimiter: rate.NewLimiter(rate.Limit(5), 10),
		logger:          logger,
	}
}

// AddCollaborator grants the named user access to owner/repo. True only on a
// 2xx response; any transport error, timeout or non-2xx status is false.
func (g *CollaboratorGateway) AddCollaborator(
	ctx context.Context,
	owner, repo, username, accessToken string,
) bool {
	return g.doCollaboratorRequest(ctx, http.MethodPut, owner, repo, username, accessToken)
}

// DeleteCollaborator revokes the named user's access to owner/repo. Same
// boolean contract as AddCollaborator.
func (g *CollaboratorGateway) DeleteCollaborator(
	ctx context.Context,
	owner, repo, username, accessToken string,
) bool {
	return g.doCollaboratorRequest(ctx, http.MethodDelete, owner, repo, username, accessToken)
}

func (g *CollaboratorGateway) doCollaboratorRequest(
	ctx context.Context,
	method, owner, repo, username, accessToken string,
) bool {
	if owner == "" || repo == "" || username == "" {
		return false
	}

	if err := g.outboundLimiter.Wait(ctx); err != nil {
		return false
	}

	endpoint := fmt.Sprintf(
		"%s/repos/%s/%s/collaborators/%s",
		g.baseURL,
		url.PathEscape(owner),
		url.PathEscape(repo),
		url.PathEscape(username),
	)

	request, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		g.logger.Error("failed to build collaborator request", "error", err)
		return false
	}

	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("Authorization", "Bearer "+accessToken)

	response, err := g.client.Do(request)
	if err != nil {
		g.logger.Warn("collaborator request failed",
			"method", method,
			"owner", owner,
			"repo", repo,
			"error", err,
		)
		return false
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		g.logger.Warn("collaborator request rejected",
			"method", method,
			"owner", owner,
			"repo", repo,
			"status", response.StatusCode,
		)
		return false
	}

	return true
}
