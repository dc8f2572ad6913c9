package repohost

import (
	"sync"
	"time"

	"projecthub/internal/config"
	"projecthub/internal/util/logger"
)

var (
	once    sync.Once
	gateway *CollaboratorGateway
)

func GetCollaboratorGateway() *CollaboratorGateway {
	once.Do(func() {
		env := config.GetEnv()

		gateway = NewCollaboratorGateway(
			env.RepoHostBaseURL,
			time.Duration(env.RepoHostTimeoutSeconds)*time.Second,
			logger.GetLogger(),
		)
	})

	return gateway
}
