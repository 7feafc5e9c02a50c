package auth

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"rkanban/internal/application/session"
	"rkanban/internal/application/status"
	"rkanban/internal/domain/entity"
	"rkanban/internal/domain/repository"
	"rkanban/internal/domain/service"
)

// LoginUseCase signs in and stores the returned token
type LoginUseCase struct {
	remote     repository.AuthRemote
	session    *session.Session
	tracker    *status.Tracker
	validation *service.ValidationService
}

// NewLoginUseCase creates a new LoginUseCase
func NewLoginUseCase(
	remote repository.AuthRemote,
	sess *session.Session,
	tracker *status.Tracker,
	validation *service.ValidationService,
) *LoginUseCase {
	return &LoginUseCase{
		remote:     remote,
		session:    sess,
		tracker:    tracker,
		validation: validation,
	}
}

// Execute logs in with email and password
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) error {
	if err := uc.validation.ValidateCredentials(email, password); err != nil {
		return err
	}

	end := uc.tracker.Begin(entity.OpLogin)
	token, err := uc.remote.Login(ctx, email, password)
	end()
	if err != nil {
		uc.tracker.Error(entity.OpLogin, err)
		return err
	}
	if token == "" {
		return &entity.SyncFailure{Op: entity.OpLogin, Err: entity.ErrNotAuthenticated}
	}

	if err := uc.session.SetToken(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	log.WithField("email", email).Info("logged in")
	return nil
}

// RegisterUseCase creates an account
type RegisterUseCase struct {
	remote     repository.AuthRemote
	tracker    *status.Tracker
	validation *service.ValidationService
}

// NewRegisterUseCase creates a new RegisterUseCase
func NewRegisterUseCase(
	remote repository.AuthRemote,
	tracker *status.Tracker,
	validation *service.ValidationService,
) *RegisterUseCase {
	return &RegisterUseCase{remote: remote, tracker: tracker, validation: validation}
}

// Execute registers email with password. It does not log in.
func (uc *RegisterUseCase) Execute(ctx context.Context, email, password string) error {
	if err := uc.validation.ValidateCredentials(email, password); err != nil {
		return err
	}

	end := uc.tracker.Begin(entity.OpRegister)
	err := uc.remote.Register(ctx, email, password)
	end()
	if err != nil {
		uc.tracker.Error(entity.OpRegister, err)
		return err
	}
	uc.tracker.Info(entity.OpRegister, "Registration successful. Please log in.")
	return nil
}
