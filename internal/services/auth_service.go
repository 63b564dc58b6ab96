package services

import (
	"context"
	"errors"
	"fmt"

	"employee-admin/internal/models"
	"employee-admin/internal/repositories"
	"employee-admin/internal/utils"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email is already registered")
	ErrRegistrationFailed = errors.New("failed to register user")
)

// AuthService defines the interface for authentication related operations
type AuthService interface {
	Register(ctx context.Context, name, email, phone, password string) error
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type authServiceImpl struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register handles new user registration
func (s *authServiceImpl) Register(ctx context.Context, name, email, phone, password string) error {
	s.logger.Info("Attempting to register user", zap.String("email", email))

	// Check if the email is already registered
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Error checking for existing email", zap.String("email", email), zap.Error(err))
		return ErrRegistrationFailed
	}
	if existingUser != nil {
		s.logger.Warn("Registration attempt failed: email already registered", zap.String("email", email))
		return ErrEmailExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", zap.String("email", email), zap.Error(err))
		return ErrRegistrationFailed
	}

	newUser := &models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
	}

	if _, err := s.userRepo.CreateUser(ctx, newUser); err != nil {
		s.logger.Error("Failed to create user in database", zap.String("email", email), zap.Error(err))
		return ErrRegistrationFailed
	}

	s.logger.Info("User registered successfully", zap.String("email", email), zap.Int64("userID", newUser.ID))
	return nil
}

// Login verifies a claimed credential and returns the matching user.
// Unknown emails and wrong passwords both map to ErrInvalidCredentials;
// a store failure is reported as itself so callers can tell the two apart.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, error) {
	s.logger.Info("Attempting to login user", zap.String("email", email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Error finding user during login", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("looking up user during login: %w", err)
	}
	if user == nil {
		s.logger.Warn("Login attempt failed: user not found", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.logger.Warn("Login attempt failed: invalid password", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User logged in successfully", zap.String("email", email), zap.Int64("userID", user.ID))
	return user, nil
}
