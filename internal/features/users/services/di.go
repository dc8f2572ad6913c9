package users_services

import (
	users_repositories "projecthub/internal/features/users/repositories"
)

var secretKeyRepository = &users_repositories.SecretKeyRepository{}
var userRepository = &users_repositories.UserRepository{}

var userService = &UserService{
	userRepository:      userRepository,
	secretKeyRepository: secretKeyRepository,
}

var managementService = &UserManagementService{
	userRepository: userRepository,
}

func GetUserService() *UserService {
	return userService
}

func GetManagementService() *UserManagementService {
	return managementService
}
