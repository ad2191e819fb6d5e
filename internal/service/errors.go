package service

import (
	"errors"
	"fmt"
)

// Ошибки бизнес-логики
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidStatus      = errors.New("invalid red-flag status")
	ErrInvalidCredentials = errors.New("wrong credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("operation not permitted")
)

// Причины отказа в доступе, все они оборачивают ErrForbidden
var (
	ErrAdminCannotCreate = fmt.Errorf("only regular users can create a red-flag: %w", ErrForbidden)
	ErrAdminCannotModify = fmt.Errorf("only regular users can modify a red-flag: %w", ErrForbidden)
	ErrNotAdmin          = fmt.Errorf("only administrators can change a red-flag status: %w", ErrForbidden)
	ErrNotCreator        = fmt.Errorf("only the creator of a red-flag can modify it: %w", ErrForbidden)
)
