package service

import (
	"strings"

	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/valueobject"
)

// ValidationService checks user input before anything is sent to the server
type ValidationService struct{}

// NewValidationService creates a new ValidationService
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ValidateTaskTitle rejects empty task titles
func (s *ValidationService) ValidateTaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return entity.NewValidationError("title", entity.ErrEmptyTaskTitle)
	}
	return nil
}

// ValidateListTitle rejects empty list titles
func (s *ValidationService) ValidateListTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return entity.NewValidationError("title", entity.ErrEmptyListTitle)
	}
	return nil
}

// ValidatePriority parses a priority, defaulting empty input to low
func (s *ValidationService) ValidatePriority(priority string) (valueobject.Priority, error) {
	p, err := valueobject.ParsePriority(priority)
	if err != nil {
		return "", entity.NewValidationError("priority", err)
	}
	return p, nil
}

// ValidateDueDate parses an optional due date
func (s *ValidationService) ValidateDueDate(dueDate string) (valueobject.DueDate, error) {
	d, err := valueobject.ParseDueDate(dueDate)
	if err != nil {
		return valueobject.DueDate{}, entity.NewValidationError("due date", err)
	}
	return d, nil
}

// ValidateCredentials rejects empty email or password
func (s *ValidationService) ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return entity.NewValidationError("email", entity.ErrRequiredField)
	}
	if password == "" {
		return entity.NewValidationError("password", entity.ErrRequiredField)
	}
	return nil
}
