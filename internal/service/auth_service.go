package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/config"
	"github.com/milewise/mile_go_server/internal/model"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/pkg/identity"
	"github.com/milewise/mile_go_server/internal/repository"
)

var (
	ErrInvalidSession = errors.New("invalid session_id")
	ErrUserNotFound   = errors.New("user not found")
)

type AuthService struct {
	userRepo       *repository.UserRepository
	sessionRepo    *repository.SessionRepository
	identityClient *identity.Client
	sessionTTL     time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository, cfg *config.Config) *AuthService {
	timeout := time.Duration(cfg.Identity.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttlDays := cfg.Identity.SessionTTLDays
	if ttlDays <= 0 {
		ttlDays = 7
	}

	return &AuthService{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		identityClient: identity.NewClient(cfg.Identity.ExchangeURL, timeout),
		sessionTTL:     time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// SessionTTLSeconds is the cookie max-age matching the session expiry.
func (s *AuthService) SessionTTLSeconds() int {
	return int(s.sessionTTL / time.Second)
}

// ExchangeSession verifies an opaque session handle with the identity
// provider, upserts the user by email and inserts a new session bound to the
// externally-issued token. Repeated exchanges for the same user are expected
// to produce multiple valid sessions.
func (s *AuthService) ExchangeSession(ctx context.Context, sessionID string) (*dto.SessionData, error) {
	data, err := s.identityClient.GetSessionData(ctx, sessionID)
	if err != nil {
		log.Printf("Failed to exchange session: %v", err)
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.GetByEmail(data.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		user = &model.User{
			UserID: newRecordID("user"),
			Email:  data.Email,
			Name:   data.Name,
		}
		if data.Picture != "" {
			user.Picture = &data.Picture
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
	}

	session := &model.Session{
		UserID:       user.UserID,
		SessionToken: data.SessionToken,
		ExpiresAt:    time.Now().UTC().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	resp := &dto.SessionData{
		ID:           user.UserID,
		Email:        user.Email,
		Name:         user.Name,
		Picture:      data.Picture,
		SessionToken: data.SessionToken,
	}
	return resp, nil
}

// GetUserByToken resolves a bearer token to its user. A missing, expired or
// orphaned session yields (nil, nil): unauthenticated is not an error here,
// callers decide whether authentication is required. Read-only, no sliding
// expiry.
func (s *AuthService) GetUserByToken(token string) (*model.User, error) {
	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// Expiry at or before now is rejected, cleanup or not
	if !time.Now().UTC().Before(session.ExpiresAt) {
		return nil, nil
	}

	user, err := s.userRepo.GetByUserID(session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// Logout invalidates the session bound to the token.
func (s *AuthService) Logout(token string) error {
	return s.sessionRepo.DeleteByToken(token)
}
