package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	repo "ctc-webbase/internal/repository"
)

type AuthService struct {
	users  repo.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repo.UserRepository, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// Login checks email and password and issues an HS256 access token carrying
// the user id and role, scoped to the access audience.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.Unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}

	now := time.Now()
	exp := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"uid":  user.ID.Hex(),
		"sub":  user.ID.Hex(),
		"role": string(user.Role),
		"aud":  dto.AccessTokenAudience,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.LoginResponse{User: user, AccessToken: signed, ExpiresAt: exp.UTC()}, nil
}
