package access_requests_controllers

import (
	access_requests_services "projecthub/internal/features/access_requests/services"
)

var accessRequestController = AccessRequestController{
	accessRequestService: access_requests_services.GetAccessRequestService(),
}

func GetAccessRequestController() *AccessRequestController {
	return &accessRequestController
}
