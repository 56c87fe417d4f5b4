package services

import (
	"context"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	jwtService     service.JWTService
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepository.FindByLogin(ctx, payload.Login)
	if err != nil {
		if err == apperrors.ErrNotFound {
			// Same answer as a wrong password; logins are not probeable.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		s.logger.Warn("failed login attempt", zap.String("login", payload.Login))
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.Login, user.Company)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("login", user.Login), zap.String("company", user.Company))

	return &dto.TokenPairDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtService.GetAccessTokenTTL().Seconds()),
		Company:      user.Company,
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	// The user may have been removed since the refresh token was issued.
	user, err := s.userRepository.FindByLogin(ctx, claims.Login)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.Login, user.Company)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtService.GetAccessTokenTTL().Seconds()),
		Company:      user.Company,
	}, nil
}
