package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/logger"
	"ecolithswap-backend/internal/repository"
	"ecolithswap-backend/internal/security"
)

var (
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	ErrAccountDisabled    = fmt.Errorf("account is disabled: %w", domain.ErrForbidden)
)

type authService struct {
	userRepo repository.UserRepository
	denylist repository.TokenDenylist
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, denylist repository.TokenDenylist, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		denylist: denylist,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, email, password, fullName, phone string) (*domain.User, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", "", domain.Conflictf("email %s is already registered", email)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		PhoneNumber:  phone,
		Role:         domain.UserRoleCustomer,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.tokenPair(user)
	return user, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", "", ErrAccountDisabled
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn("Failed to record login timestamp", "user_id", user.ID, "error", err)
	}

	access, refresh, err := s.tokenPair(user)
	return user, access, refresh, err
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("refresh token: %w", domain.ErrUnauthorized)
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", fmt.Errorf("not a refresh token: %w", domain.ErrUnauthorized)
	}

	denied, err := s.denylist.IsDenied(ctx, refreshToken)
	if err != nil {
		return "", "", err
	}
	if denied {
		return "", "", fmt.Errorf("refresh token revoked: %w", domain.ErrUnauthorized)
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", fmt.Errorf("refresh token user: %w", domain.ErrUnauthorized)
	}
	if !user.IsActive {
		return "", "", ErrAccountDisabled
	}

	return s.tokenPair(user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		// Expired or garbage tokens need no denylisting.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.denylist.Add(ctx, refreshToken, ttl)
}

func (s *authService) tokenPair(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
