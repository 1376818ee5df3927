package service

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/sirupsen/logrus"
)

// FirebaseAuthClient defines the interface for Firebase Auth operations
// This allows mocking for tests
type FirebaseAuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthService exchanges Firebase ID tokens for API access tokens
type AuthService struct {
	userRepo   domain.UserRepository
	authClient FirebaseAuthClient
	jwtSecret  string
	accessTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo domain.UserRepository, authClient FirebaseAuthClient, jwtSecret string, accessTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &AuthService{
		userRepo:   userRepo,
		authClient: authClient,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
	}
}

// LoginResponse contains the user, the signed access token and whether the user was just created
type LoginResponse struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
	IsNewUser bool
}

// LoginOrRegister verifies the Firebase token, creates the user on first login and issues an access token
func (s *AuthService) LoginOrRegister(ctx context.Context, firebaseToken string) (*LoginResponse, error) {
	token, err := s.authClient.VerifyIDToken(ctx, firebaseToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	if name == "" {
		name = email
	}

	user := &domain.User{
		FirebaseUID: token.UID,
		Email:       email,
		Name:        name,
	}
	created, err := s.userRepo.UpsertByFirebaseUID(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	signed, expiresAt, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"new_user": created,
	}).Info("user logged in")

	return &LoginResponse{
		User:      user,
		Token:     signed,
		ExpiresAt: expiresAt,
		IsNewUser: created,
	}, nil
}

// GenerateAccessToken signs an HS256 token carrying the user id
func (s *AuthService) GenerateAccessToken(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.accessTTL)

	claims := domain.AccessClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
