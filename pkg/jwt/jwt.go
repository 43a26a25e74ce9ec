package jwt

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired     = errors.New("token has expired")
	ErrTokenNotValidYet = errors.New("token not active yet")
	ErrTokenMalformed   = errors.New("malformed token")
	ErrTokenInvalid     = errors.New("invalid token")
)

// CustomClaims is the token payload carried by both surfaces.
type CustomClaims struct {
	UID    int `json:"uid"`
	Status int `json:"status"`
	jwt.RegisteredClaims
}

// TokenType distinguishes admin-surface tokens from app-surface tokens.
type TokenType string

const (
	TokenTypeAdmin TokenType = "admin"
	TokenTypeApp   TokenType = "app"
)

// JWTManager signs and parses HS256 tokens for one token type.
type JWTManager struct {
	signingKey []byte
	tokenType  TokenType
}

func NewJWTManager(tokenType TokenType) *JWTManager {
	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		signingKey = "default-secret-key" // dev default, must be set in production
	}

	return &JWTManager{
		signingKey: []byte(signingKey),
		tokenType:  tokenType,
	}
}

// GenerateToken issues a token for a user; status is the account status
// level consumed by the admin gate.
func (j *JWTManager) GenerateToken(uid, status int, duration ...time.Duration) (string, error) {
	expiry := 24 * time.Hour
	if len(duration) > 0 {
		expiry = duration[0]
	}

	claims := CustomClaims{
		UID:    uid,
		Status: status,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    fmt.Sprintf("anke-go-api-%s", j.tokenType),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.signingKey)
}

// ParseToken validates a token and returns its claims.
func (j *JWTManager) ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.signingKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotValidYet
		default:
			return nil, ErrTokenInvalid
		}
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}

// ExtractUID parses a token and returns only the user id.
func (j *JWTManager) ExtractUID(tokenString string) (int, error) {
	claims, err := j.ParseToken(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UID, nil
}

// RefreshToken re-issues a still-parseable token with a fresh expiry.
func (j *JWTManager) RefreshToken(tokenString string, duration ...time.Duration) (string, error) {
	claims, err := j.ParseToken(tokenString)
	if err != nil {
		return "", err
	}

	expiry := 24 * time.Hour
	if len(duration) > 0 {
		expiry = duration[0]
	}

	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(expiry))
	claims.IssuedAt = jwt.NewNumericDate(time.Now())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.signingKey)
}
