package models

import "errors"

// Ошибки хранилищ
var (
	ErrIncidentNotFound  = errors.New("incident not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)
