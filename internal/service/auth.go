package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/apperrors"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/auth"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/models"
)

// Signup creates a new user with a hashed password and an empty cart.
// Only the salted bcrypt hash is ever stored, never the password itself.
func (s *Service) Signup(ctx context.Context, username, password, emailAddr string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrValidation
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        emailAddr,
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.carts.Init(user.ID)

	if s.mail != nil && user.Email != "" {
		go func(to, name string) {
			if err := s.mail.SendWelcome(to, name); err != nil {
				s.log.Errorf("Failed to send welcome email to %s: %v", to, err)
			}
		}(user.Email, user.Username)
	}

	s.log.Infof("User registered: %s", user.Username)
	return user, nil
}

// Login authenticates a user and returns a signed token bound to the
// user's id with the configured TTL.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	user, err := s.store.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, []byte(s.config.JWTSecret), s.config.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Username)
	return token, nil
}
