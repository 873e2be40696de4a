package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bidtrack/internal/domain/entities"
)

func TestVerify_RoundTrip(t *testing.T) {
	user := entities.User{
		UID:   "bdm-1",
		Email: "bianca@example.com",
		Name:  "Bianca Monte",
		Role:  entities.RoleBDM,
	}

	tokenString, err := IssueToken(user, time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := NewJWTVerifier().Verify(context.Background(), tokenString)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.UID != user.UID || got.Email != user.Email || got.Name != user.Name || got.Role != user.Role {
		t.Fatalf("expected %+v, got %+v", user, got)
	}
}

func TestVerify_Rejections(t *testing.T) {
	verifier := NewJWTVerifier()

	t.Run("expired token", func(t *testing.T) {
		tokenString, err := IssueToken(entities.User{UID: "bdm-1", Role: entities.RoleBDM}, -time.Minute)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := verifier.Verify(context.Background(), tokenString); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := verifier.Verify(context.Background(), "not-a-jwt"); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "bdm-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		tokenString, err := token.SignedString([]byte("some_other_key"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := verifier.Verify(context.Background(), tokenString); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "bdm",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		tokenString, err := token.SignedString(GetJWTSecret())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := verifier.Verify(context.Background(), tokenString); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
