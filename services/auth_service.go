package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"rentacar/database"
	"rentacar/models"
)

// ErrInvalidCredentials is returned when the provided credentials are invalid.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenLifetime = 15 * time.Hour

// AdminClaims are the claims carried by an admin session token
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Login verifies the admin credentials against the stored bcrypt hash and
// issues a signed session token. The comparison is exact and case-sensitive;
// there is no lockout or attempt counting.
func Login(email, password string, secret []byte) (*models.LoginResponse, error) {
	db := database.GetDB()

	var admin models.AdminUser
	err := db.QueryRow(`
		SELECT id, email, password_hash, created_at
		FROM admin_users
		WHERE email = $1
	`, email).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := IssueToken(admin.ID, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Printf("Admin login: %s", admin.Email)
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// IssueToken signs an admin session token for the given subject
func IssueToken(subject string, secret []byte) (string, time.Time, error) {
	expiresAt := time.Now().Add(tokenLifetime)
	claims := &AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken validates a session token and returns its claims
func ParseToken(tokenString string, secret []byte) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
