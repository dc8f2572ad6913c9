package users_testing

import (
	"fmt"
	"strings"
	"time"

	users_dto "projecthub/internal/features/users/dto"
	users_enums "projecthub/internal/features/users/enums"
	users_models "projecthub/internal/features/users/models"
	users_repositories "projecthub/internal/features/users/repositories"
	users_services "projecthub/internal/features/users/services"

	"github.com/google/uuid"
)

func CreateTestUser(role users_enums.UserRole) *users_dto.SignInResponseDTO {
	userID := uuid.New()
	email := fmt.Sprintf("%s-%s@test.com", strings.ToLower(string(role)), userID.String()[:8])

	hashedPassword := "$2a$10$test"
	user := &users_models.User{
		ID:             userID,
		Name:           "Test " + userID.String()[:8],
		Email:          email,
		HashedPassword: &hashedPassword,
		Role:           role,
		LastUpdated:    time.Now().UTC(),
		CreatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	err := userRepository.CreateUser(user)
	if err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	response.Email = user.Email

	return response
}

func CreateTestUserWithName(role users_enums.UserRole, name string) *users_dto.SignInResponseDTO {
	response := CreateTestUser(role)

	userRepository := &users_repositories.UserRepository{}
	user, err := userRepository.GetUserByID(response.UserID)
	if err != nil {
		panic(err)
	}

	user.Name = name
	if err := userRepository.UpdateUser(user); err != nil {
		panic(err)
	}

	return response
}

func ReacreateInitAdminAndGetAccess() *users_dto.SignInResponseDTO {
	RecreateInitialAdmin()

	userRepository := &users_repositories.UserRepository{}
	user, err := userRepository.GetUserByEmail("admin")
	if err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return response
}

func RecreateInitialAdmin() {
	userRepository := &users_repositories.UserRepository{}
	err := userRepository.RenameUserEmailForTests("admin", "admin-"+uuid.New().String())
	if err != nil {
		panic(err)
	}

	userService := users_services.GetUserService()
	err = userService.CreateInitialAdmin()
	if err != nil {
		panic(err)
	}
}
