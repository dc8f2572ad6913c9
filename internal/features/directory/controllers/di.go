package directory_controllers

import (
	directory_services "projecthub/internal/features/directory/services"
)

var directoryController = DirectoryController{
	directoryService: directory_services.GetDirectoryService(),
}

func GetDirectoryController() *DirectoryController {
	return &directoryController
}
