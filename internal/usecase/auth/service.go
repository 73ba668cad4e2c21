package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/config"
	domainUser "taskboard/internal/domain/user"
	"taskboard/internal/logger"
	appErrors "taskboard/pkg/errors"
	"taskboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements signup, login and the refresh-token exchange.
type Service struct {
	userRepo         domainUser.Repository
	refreshTokenRepo domainUser.RefreshTokenRepository
	config           *config.Config
}

// NewService creates a new auth service
func NewService(
	userRepo domainUser.Repository,
	refreshTokenRepo domainUser.RefreshTokenRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		config:           cfg,
	}
}

func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError(err)
	}

	existing, err := s.userRepo.GetByPhone(ctx, req.Phone)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Signup attempt with existing phone",
			zap.String("phone", req.Phone),
			zap.String("event", "signup_failed_duplicate_phone"),
		)
		return nil, domainUser.ErrPhoneAlreadyUsed
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var level *domainUser.ExperienceLevel
	if req.ExperienceLevel != nil {
		l := domainUser.ExperienceLevel(*req.ExperienceLevel)
		level = &l
	}

	user := &domainUser.User{
		Name:              req.Name,
		CountryCode:       req.CountryCode,
		Phone:             req.Phone,
		YearsOfExperience: req.YearsOfExperience,
		ExperienceLevel:   level,
		Address:           req.Address,
		PasswordHashed:    hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokenPair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "user_signed_up"),
	)

	return &AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError(err)
	}

	user, err := s.userRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with unknown phone",
				zap.String("event", "login_failed_unknown_phone"),
			)
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", user.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	tokenPair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "login_success"),
	)

	return &AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}

// Refresh exchanges a refresh token for a new access token. The token must
// both verify against the refresh secret and exist unexpired in the store;
// either check failing rejects the exchange without issuing or mutating
// anything.
func (s *Service) Refresh(ctx context.Context, req *RefreshRequest) (*RefreshResponse, error) {
	claims, err := utils.ValidateToken(req.Token, s.config.JWT.RefreshSecret)
	if err != nil {
		logger.Warn("Token refresh with invalid token",
			zap.String("event", "token_refresh_failed_invalid_token"),
			zap.Error(err),
		)
		return nil, appErrors.ErrInvalidToken
	}

	stored, err := s.refreshTokenRepo.GetByToken(ctx, req.Token)
	if err != nil {
		logger.Warn("Token refresh with untracked token",
			zap.String("user_id", claims.UserID.String()),
			zap.String("event", "token_refresh_failed_token_not_found"),
		)
		return nil, appErrors.ErrInvalidToken
	}

	if stored.UserID != claims.UserID {
		logger.Warn("Token refresh with mismatched user",
			zap.String("event", "token_refresh_failed_user_mismatch"),
		)
		return nil, appErrors.ErrInvalidToken
	}

	accessToken, err := utils.GenerateToken(claims.UserID, s.config.JWT.AccessSecret, s.config.JWT.AccessTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	logger.Debug("Access token refreshed",
		zap.String("user_id", claims.UserID.String()),
		zap.String("event", "token_refresh_success"),
	)

	return &RefreshResponse{AccessToken: accessToken}, nil
}

func (s *Service) issueTokens(ctx context.Context, userID uuid.UUID) (*utils.TokenPair, error) {
	tokenPair, err := utils.GenerateTokenPair(
		userID,
		s.config.JWT.AccessSecret,
		s.config.JWT.RefreshSecret,
		s.config.JWT.AccessTTL(),
		s.config.JWT.RefreshTTL(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	refreshToken := &domainUser.RefreshToken{
		UserID:    userID,
		Token:     tokenPair.RefreshToken,
		ExpiresAt: time.Now().Add(s.config.JWT.RefreshTTL()),
	}
	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return tokenPair, nil
}
