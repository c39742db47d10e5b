package models

import (
	"errors"

	"recipe-app/constants"
)

var (
	ErrNotFound           = errors.New(constants.ErrNotFound)
	ErrInvalidInput       = errors.New(constants.ErrInvalidInput)
	ErrEmailRequired      = errors.New(constants.ErrEmailRequired)
	ErrEmailAlreadyExists = errors.New(constants.ErrEmailAlreadyExists)
	ErrInvalidCredentials = errors.New(constants.ErrInvalidCredentials)
	ErrTokenBlacklisted   = errors.New(constants.ErrTokenBlacklisted)
	ErrInvalidToken       = errors.New(constants.ErrInvalidToken)
)
