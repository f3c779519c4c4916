package services

import (
	"context"
	"errors"
	"strings"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/adapters/persistence/repositories"
	"permitdesk/internal/config"
	"permitdesk/internal/core/domain"
	"permitdesk/internal/pkg/jwt"
	"permitdesk/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
)

// AuthService handles authentication business logic
type AuthService struct {
	workerRepo       repositories.WorkerRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	workerRepo repositories.WorkerRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		workerRepo:       workerRepo,
		refreshTokenRepo: refreshTokenRepo,
		cfg:              cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Worker       *models.WorkerResponse `json:"worker"`
	AccessToken  string                 `json:"access_token"`
	RefreshToken string                 `json:"refresh_token"`
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login authenticates a worker by email and password
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	worker, err := s.workerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, worker.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(worker)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, worker.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	logrus.WithField("worker_id", worker.ID).Info("worker logged in")

	return &AuthResponse{
		Worker:       worker.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken rotates a refresh token and issues a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	tokenHash := password.HashToken(refreshToken)

	storedToken, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if storedToken.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if storedToken.IsExpired() {
		return nil, ErrTokenExpired
	}

	worker, err := s.workerRepo.GetByID(ctx, claims.WorkerID)
	if err != nil {
		return nil, domain.ErrWorkerNotFound
	}

	// Rotation: the presented token is single use
	if err := s.refreshTokenRepo.Revoke(ctx, storedToken.ID); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(worker)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, worker.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	return &AuthResponse{
		Worker:       worker.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)
	return s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash)
}

// LogoutAll revokes every session of a worker
func (s *AuthService) LogoutAll(ctx context.Context, workerID uint) error {
	return s.refreshTokenRepo.RevokeAllByWorkerID(ctx, workerID)
}

// GetProfile returns the authenticated worker's profile
func (s *AuthService) GetProfile(ctx context.Context, workerID uint) (*models.WorkerResponse, error) {
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, err
	}
	return worker.ToResponse(), nil
}

// generateTokens generates access and refresh tokens
func (s *AuthService) generateTokens(worker *models.Worker) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		worker.ID,
		worker.Email,
		worker.FullName,
		worker.Role,
		worker.AreaID,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.GenerateRefreshToken(
		worker.ID,
		uuid.New().String(),
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// storeRefreshToken stores the hash of a refresh token
func (s *AuthService) storeRefreshToken(ctx context.Context, workerID uint, refreshToken string) error {
	token := &models.RefreshToken{
		WorkerID:  workerID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	return s.refreshTokenRepo.Create(ctx, token)
}
