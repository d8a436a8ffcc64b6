package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/app/models/dto"
	"github.com/kaanbk/registrar/internal/app/repositories"
	"github.com/kaanbk/registrar/internal/pkg/apperrors"
	"github.com/kaanbk/registrar/internal/pkg/auth"
	"github.com/kaanbk/registrar/internal/pkg/logger"
	"github.com/kaanbk/registrar/internal/pkg/validation"
)

// AuthService handles authentication and account registration
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, tokenRepo *repositories.TokenRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Register creates a user account plus its student or instructor record
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.CompiledPatterns.Email.MatchString(email) {
		return nil, apperrors.NewBadRequestError("invalid email address")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		RoleType:  req.RoleType,
		IsActive:  true,
	}

	switch req.RoleType {
	case models.RoleStudent:
		if !validation.CompiledPatterns.Identifier.MatchString(req.Identifier) {
			return nil, apperrors.NewBadRequestError("student identifier must be 8 digits")
		}
		taken, err := s.userRepo.IdentifierExists(ctx, req.Identifier)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrIdentifierExists
		}
		if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		student := &models.Student{
			UserID:       user.ID,
			Identifier:   req.Identifier,
			DepartmentID: req.DepartmentID,
		}
		if err := s.userRepo.CreateStudent(ctx, student); err != nil {
			return nil, err
		}

	case models.RoleInstructor:
		if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		instructor := &models.Instructor{
			UserID:       user.ID,
			DepartmentID: req.DepartmentID,
			Title:        strings.TrimSpace(req.Title),
		}
		if err := s.userRepo.CreateInstructor(ctx, instructor); err != nil {
			return nil, err
		}

	default:
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown role %q", req.RoleType))
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.RoleType)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}

	return tokens, nil
}

// RefreshToken exchanges a valid refresh token for a fresh pair, revoking the old one
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes all of a user's refresh tokens
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokenRepo.RevokeAllUserTokens(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	err = s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry())
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
