// internal/auth/service.go
// Session verification. The core only needs to know whether a user is
// currently signed in; issuing credentials is someone else's job.

package auth

import (
	"context"
	"errors"
	"fmt"

	firebaseauth "firebase.google.com/go/v4/auth"

	"github.com/emberlyapp/emberly-backend/internal/common/utils"
)

// ErrInvalidToken is returned when a presented token cannot be verified.
var ErrInvalidToken = errors.New("invalid or expired token")

// Verifier checks a bearer token and returns the signed-in user's id.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// firebaseVerifier validates Firebase ID tokens, matching the managed
// backend the profile documents live in.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier wraps an initialized Firebase Auth client.
func NewFirebaseVerifier(client *firebaseauth.Client) Verifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return decoded.UID, nil
}

// jwtVerifier validates locally issued HS256 session tokens. Used in
// development and tests where no Firebase project is configured.
type jwtVerifier struct {
	secret string
}

// NewJWTVerifier creates a verifier for local session tokens.
func NewJWTVerifier(secret string) Verifier {
	return &jwtVerifier{secret: secret}
}

func (v *jwtVerifier) Verify(ctx context.Context, token string) (string, error) {
	claims, err := utils.ValidateJWT(token, v.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims.UserID, nil
}
