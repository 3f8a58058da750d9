package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-timeoff/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	IssueToken(p Principal, expiry time.Duration) (string, error)
	ParseToken(tokenString string) (*Principal, error)
	GetMe(ctx context.Context, p Principal) (MeResponse, error)
}

// ProfileReader is the slice of the profile store that /auth/me needs.
type ProfileReader interface {
	GetMe(ctx context.Context, userID string) (MeResponse, error)
}

type service struct {
	secret   []byte
	profiles ProfileReader
}

func NewService(secret string, profiles ProfileReader) Service {
	return &service{secret: []byte(secret), profiles: profiles}
}

func (s *service) IssueToken(p Principal, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": p.ID,
		"email":   p.Email,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

func (s *service) ParseToken(tokenString string) (*Principal, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, autherrors.ErrTokenNotFound
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		userID, _ = claims["sub"].(string)
	}
	if userID == "" {
		return nil, autherrors.ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &Principal{ID: userID, Email: email}, nil
}

func (s *service) GetMe(ctx context.Context, p Principal) (MeResponse, error) {
	if s.profiles == nil {
		return MeResponse{ID: p.ID, Email: p.Email}, nil
	}
	return s.profiles.GetMe(ctx, p.ID)
}
