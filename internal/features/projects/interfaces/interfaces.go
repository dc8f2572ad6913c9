package projects_interfaces

import "context"

// CollaboratorGateway is the external collaborator registry boundary. Both
// calls degrade to a boolean: false covers transport errors, timeouts and
// non-2xx responses alike.
type CollaboratorGateway interface {
	AddCollaborator(ctx context.Context, owner, repo, username, accessToken string) bool
	DeleteCollaborator(ctx context.Context, owner, repo, username, accessToken string) bool
}
