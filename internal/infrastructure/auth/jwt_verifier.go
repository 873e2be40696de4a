package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/usecase/interfaces"
)

// ErrInvalidToken covers every way a presented token can fail: bad signature,
// expired, malformed, or claims that do not describe a known actor.
var ErrInvalidToken = errors.New("invalid token")

// GetJWTSecret returns the HMAC signing key.
func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only, DO NOT use in production
	}
	return []byte(secret)
}

// JWTVerifier validates HMAC-signed bearer tokens and extracts the actor
// identity from their claims.
type JWTVerifier struct {
	secret []byte
}

var _ interfaces.ITokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier() *JWTVerifier {
	return &JWTVerifier{secret: GetJWTSecret()}
}

// Verify parses and validates tokenString and returns the identity it was
// minted for. Expiry is enforced by the parser.
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (entities.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return entities.User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.User{}, ErrInvalidToken
	}

	uid, _ := claims["sub"].(string)
	if uid == "" {
		return entities.User{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return entities.User{
		UID:   uid,
		Email: email,
		Name:  name,
		Role:  entities.Role(role),
	}, nil
}

// IssueToken mints a signed token for user, valid for ttl. Used by the seed
// command to print ready-to-use development tokens.
func IssueToken(user entities.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.UID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})
	return token.SignedString(GetJWTSecret())
}
