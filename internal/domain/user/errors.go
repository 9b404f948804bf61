package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrManagerNotFound         = errors.New("manager not found")
	ErrPetOwnerNotFound        = errors.New("pet owner not found")
	ErrServiceProviderNotFound = errors.New("service provider not found")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidInput            = errors.New("invalid user input")
)
