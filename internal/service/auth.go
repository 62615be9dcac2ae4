package service

import (
	"context"
	"errors"
	"strings"

	"github.com/M07maaad/Study-Smart-Project/internal/supabase"
)

var ErrInvalidCredentials = errors.New("email and password are required")

type Authenticator interface {
	SignUp(ctx context.Context, creds supabase.Credentials) (supabase.User, error)
	SignIn(ctx context.Context, creds supabase.Credentials) (supabase.Session, error)
}

type AuthService struct {
	auth Authenticator
}

func NewAuthService(auth Authenticator) *AuthService {
	return &AuthService{auth: auth}
}

func (s *AuthService) SignUp(ctx context.Context, email, password string) (supabase.User, error) {
	creds, err := credentials(email, password)
	if err != nil {
		return supabase.User{}, err
	}
	return s.auth.SignUp(ctx, creds)
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (supabase.Session, error) {
	creds, err := credentials(email, password)
	if err != nil {
		return supabase.Session{}, err
	}
	return s.auth.SignIn(ctx, creds)
}

func credentials(email, password string) (supabase.Credentials, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return supabase.Credentials{}, ErrInvalidCredentials
	}
	return supabase.Credentials{Email: email, Password: password}, nil
}
