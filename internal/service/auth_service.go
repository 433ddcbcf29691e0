package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/notevault/vtu-notes-api/internal/dto"
	"github.com/notevault/vtu-notes-api/internal/models"
	"github.com/notevault/vtu-notes-api/pkg/config"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

// UserStore is the repository surface AuthService depends on.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	RevokeUserRefreshTokens(ctx context.Context, userID string) error
}

// AuditStore records best-effort audit rows.
type AuditStore interface {
	Create(ctx context.Context, log *models.AuditLog) error
}

type AuthService struct {
	users    UserStore
	audits   AuditStore
	cfg      config.JWTConfig
	validate *validator.Validate
	log      *zap.Logger
}

func NewAuthService(users UserStore, audits AuditStore, cfg config.JWTConfig, validate *validator.Validate, log *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		audits:   audits,
		cfg:      cfg,
		validate: validate,
		log:      log,
	}
}

// Login checks credentials and issues an access/refresh token pair.
// Bad email and bad password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest, ip string) (*dto.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.ErrValidation.Wrap(err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrForbidden.WithMessage("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, user.ID, models.AuditActionLogin, "", ip)

	return resp, nil
}

// Signup creates a STUDENT account. Role elevation happens out of
// band, never through this endpoint.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest, ip string) (*dto.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.ErrValidation.Wrap(err)
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrConflict.WithMessage("an account with this email already exists")
	} else if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         models.RoleStudent,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, user.ID, models.AuditActionSignup, "", ip)

	return resp, nil
}

// Refresh rotates a refresh token: the presented token is revoked and
// a fresh pair is issued.
func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.ErrValidation.Wrap(err)
	}

	stored, err := s.users.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !stored.Valid() {
		return nil, apperrors.ErrUnauthorized.WithMessage("refresh token expired or revoked")
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden.WithMessage("account is disabled")
	}

	if err := s.users.RevokeRefreshToken(ctx, req.RefreshToken); err != nil {
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes all of the user's refresh tokens.
func (s *AuthService) Logout(ctx context.Context, userID, ip string) error {
	if err := s.users.RevokeUserRefreshTokens(ctx, userID); err != nil {
		return apperrors.ErrInternal.Wrap(err)
	}

	s.audit(ctx, userID, models.AuditActionLogout, "", ip)

	return nil
}

// Session resolves the current user and admin flag from claims.
func (s *AuthService) Session(ctx context.Context, userID string) (*dto.SessionResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{User: user, IsAdmin: user.IsAdmin()}, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	access, err := s.generateAccessToken(user)
	if err != nil {
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	refresh := &models.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.cfg.RefreshExpiration),
	}
	if err := s.users.CreateRefreshToken(ctx, refresh); err != nil {
		return nil, apperrors.ErrInternal.Wrap(err)
	}

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		User:         user,
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiration)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// audit writes a best-effort audit row; failures are logged only.
func (s *AuthService) audit(ctx context.Context, userID, action, detail, ip string) {
	entry := &models.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		IPAddress: ip,
	}
	if err := s.audits.Create(ctx, entry); err != nil {
		s.log.Warn("audit log write failed",
			zap.String("action", action), zap.Error(err))
	}
}
