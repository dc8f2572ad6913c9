package projects_services

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyMember     = errors.New("user is already a member of this project")
	ErrProjectIDConflict = errors.New("project with this id already exists")
)
