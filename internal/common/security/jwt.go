package security

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager issues and verifies the signed identity tokens used by the API.
// Tokens are stateless: the role claim is a snapshot taken at issuance and is
// never re-checked against the credential store, so a role change only takes
// effect once the old token expires and the user logs in again.
type TokenManager struct {
	auth *jwtauth.JWTAuth
	ttl  time.Duration
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{
		auth: jwtauth.New("HS256", secret, nil),
		ttl:  ttl,
	}
}

// JWTAuth exposes the underlying handle for the router's Verifier middleware.
func (tm *TokenManager) JWTAuth() *jwtauth.JWTAuth {
	return tm.auth
}

func (tm *TokenManager) Issue(username string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   username,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   now.Add(tm.ttl).Unix(),
		"jti":   uuid.NewString(),
	}
	_, tokenString, err := tm.auth.Encode(claims)
	return tokenString, err
}

// Verify checks signature and expiry and returns the embedded identity and
// role claim. Tampering, malformed structure, and expiry all reject.
func (tm *TokenManager) Verify(tokenString string) (string, []string, error) {
	token, err := jwtauth.VerifyToken(tm.auth, tokenString)
	if err != nil {
		return "", nil, err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", nil, err
	}
	username, err := GetSubjectFromClaims(claims)
	if err != nil {
		return "", nil, err
	}
	roles, err := GetRolesFromClaims(claims)
	if err != nil {
		return "", nil, err
	}
	return username, roles, nil
}

// Helper functions to extract claims, can be used in middleware or services
func GetSubjectFromClaims(claims jwt.MapClaims) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("sub claim is missing or not a string")
	}
	return sub, nil
}

func GetRolesFromClaims(claims jwt.MapClaims) ([]string, error) {
	// Decoded JSON arrays arrive as []interface{}; freshly built claims may
	// still hold []string.
	switch v := claims["roles"].(type) {
	case []string:
		return v, nil
	case []interface{}:
		roles := make([]string, 0, len(v))
		for _, r := range v {
			s, ok := r.(string)
			if !ok {
				return nil, errors.New("roles claim contains a non-string entry")
			}
			roles = append(roles, s)
		}
		return roles, nil
	default:
		return nil, errors.New("roles claim is missing or not a list")
	}
}

func HasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
