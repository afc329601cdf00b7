package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"notebase/internal/auth"
	apperrors "notebase/internal/errors"
	"notebase/internal/model"
	"notebase/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.Token, error)
	GoogleLogin(ctx context.Context, rawIDToken string) (*model.Token, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	verifier   auth.GoogleVerifier
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, verifier auth.GoogleVerifier) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		verifier:   verifier,
	}
}

// Register creates a new NATIVE user with a hashed password.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	hash := string(hashedPassword)
	user := &model.User{
		Email:    email,
		Password: &hash,
		AuthType: model.AuthTypeNative,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent registrations for the same email: the unique index
		// lets exactly one insert through, the other lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user by email and password and issues an access
// token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.Token, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Google accounts have no password hash and cannot log in natively.
	if user.Password == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GoogleLogin verifies a Google ID token and signs the user in, creating
// the account on first login. An email already registered with password
// authentication is never taken over.
func (s *authService) GoogleLogin(ctx context.Context, rawIDToken string) (*model.Token, error) {
	identity, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByGoogleID(ctx, identity.GoogleID)
	if err == nil {
		return s.issueToken(user)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user by google id: %w", err)
	}

	existing, err := s.userRepo.FindByEmail(ctx, identity.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrAuthTypeConflict
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	googleID := identity.GoogleID
	user = &model.User{
		Email:    identity.Email,
		GoogleID: &googleID,
		AuthType: model.AuthTypeGoogle,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Either a concurrent first login with the same Google account
			// or a racing native registration of the same email.
			if winner, ferr := s.userRepo.FindByGoogleID(ctx, identity.GoogleID); ferr == nil {
				return s.issueToken(winner)
			}
			return nil, apperrors.ErrAuthTypeConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueToken(user)
}

// ValidateToken decodes an access token and resolves it to the principal it
// was issued for. Any decode failure or a missing user maps to the same
// invalid-token error.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &model.Principal{
		UserID:   user.UserID,
		Email:    user.Email,
		Username: usernameFromEmail(user.Email),
	}, nil
}

func (s *authService) issueToken(user *model.User) (*model.Token, error) {
	username := usernameFromEmail(user.Email)
	accessToken, err := s.jwtService.GenerateAccessToken(user.UserID, user.Email, username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &model.Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Username:    username,
	}, nil
}

// usernameFromEmail derives the display username as the local part of the
// email. Informational only, not unique.
func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
