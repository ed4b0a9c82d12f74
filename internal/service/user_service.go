package service

import (
	"context"
	"fmt"
	"time"

	"proshop/internal/auth"
	"proshop/internal/model"
	"proshop/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	tokens   auth.TokenManager
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, tokens auth.TokenManager, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validator.New(),
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates an account and returns the profile with a token pair.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid register payload")
		return nil, err
	}

	exists, err := s.userRepo.Exists(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if exists {
		s.logger.Warn().Str("username", req.Username).Msg("duplicate registration attempt")
		return nil, model.ErrUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	name := req.Name
	if name == "" {
		name = req.Email
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Str("username", user.Username).
		Msg("user registered")

	return s.withTokens(user)
}

// Login verifies credentials and returns the profile with a token pair.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid login payload")
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("failed login attempt")
		return nil, model.ErrInvalidCredentials
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")
	return s.withTokens(user)
}

func (s *userService) withTokens(user *model.User) (*model.AuthResponse, error) {
	pair, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to issue tokens")
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &model.AuthResponse{
		User:         *user,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// GetProfile retrieves the caller's own profile.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile updates the caller's own profile. An empty password
// keeps the current one.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid profile payload")
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	user.Name = req.Name
	user.Email = req.Email

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info().Str("user_id", userID.String()).Msg("profile updated")
	return user, nil
}

// ListUsers retrieves all accounts.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves one account by ID.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// UpdateUser updates an account's name, email and admin flag.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *model.UpdateUserRequest) (*model.User, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid user payload")
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	user.Name = req.Name
	user.Email = req.Email
	user.IsAdmin = req.IsAdmin

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info().Str("user_id", id.String()).Bool("is_admin", user.IsAdmin).Msg("user updated")
	return user, nil
}

// DeleteUser removes an account.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if user == nil {
		return model.ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info().Str("user_id", id.String()).Msg("user deleted")
	return nil
}
