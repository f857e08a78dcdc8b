package rbac

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the acting demo user through the session token. The
// role travels in the token and is passed explicitly into Resolve at
// every call site; nothing reads it from ambient state.
type Claims struct {
	UserID     string `json:"uid"`
	UserName   string `json:"name"`
	Role       Role   `json:"role"`
	EmployeeID string `json:"eid,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the given user.
func GenerateToken(secret string, user User, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a session token and returns its claims. Tokens
// carrying an unknown role are rejected rather than defaulted.
func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if _, ok := ParseRole(string(claims.Role)); !ok {
		return nil, errors.New("unknown role in token")
	}
	return claims, nil
}
