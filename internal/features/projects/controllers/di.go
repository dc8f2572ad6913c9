package projects_controllers

import (
	projects_services "projecthub/internal/features/projects/services"
)

var projectController = ProjectController{
	projectService: projects_services.GetProjectService(),
}

var membershipController = MembershipController{
	membershipService: projects_services.GetMembershipService(),
}

func GetProjectController() *ProjectController {
	return &projectController
}

func GetMembershipController() *MembershipController {
	return &membershipController
}
