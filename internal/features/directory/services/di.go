package directory_services

import (
	directory_repositories "projecthub/internal/features/directory/repositories"
)

var directoryRepository = &directory_repositories.DirectoryRepository{}

var directoryService = &DirectoryService{
	directoryRepository,
}

func GetDirectoryService() *DirectoryService {
	return directoryService
}
