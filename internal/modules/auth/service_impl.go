package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Admin is the single configured admin account.
type Admin struct {
	Email        string
	PasswordHash []byte // bcrypt
}

type service struct {
	admin  Admin
	jwtKey []byte
	now    func() time.Time
}

// NewService creates a new auth service. An empty jwtKey is replaced with a
// random one, which invalidates tokens on every restart.
func NewService(admin Admin, jwtKey []byte) (Service, error) {
	if len(jwtKey) == 0 {
		jwtKey = make([]byte, 32)
		if _, err := rand.Read(jwtKey); err != nil {
			return nil, fmt.Errorf("generate jwt key: %w", err)
		}
	}
	admin.Email = strings.TrimSpace(admin.Email)
	return &service{admin: admin, jwtKey: jwtKey, now: time.Now}, nil
}

// HashPassword bcrypt-hashes a plaintext admin password from configuration.
func HashPassword(password string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}
	if s.admin.Email == "" || len(s.admin.PasswordHash) == 0 {
		return "", ErrDisabled
	}
	if !strings.EqualFold(email, s.admin.Email) {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.admin.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := &jwt.StandardClaims{
		Subject:   s.admin.Email,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *service) Verify(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}
	if !strings.EqualFold(claims.Subject, s.admin.Email) {
		return "", ErrInvalidCredentials
	}
	return claims.Subject, nil
}
