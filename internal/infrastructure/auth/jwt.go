// Package auth verifies access tokens issued by the identity provider.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
)

var ErrInvalidClaims = errors.New("invalid token claims")

// Claims carries the caller identity. Role is the numeric role id.
type Claims struct {
	AccountID uint `json:"account_id"`
	Role      int  `json:"role"`
	jwt.RegisteredClaims
}

// Actor converts verified claims into the caller identity.
func (c *Claims) Actor() (authorization.Actor, error) {
	role, err := authorization.RoleFromID(c.Role)
	if err != nil {
		return authorization.Actor{}, fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}
	actor := authorization.Actor{AccountID: c.AccountID, Role: role}
	if !actor.IsValid() {
		return authorization.Actor{}, ErrInvalidClaims
	}
	return actor, nil
}

type JWTService struct {
	secret           []byte
	issuer           string
	accessExpMinutes int
}

func NewJWTService(secret, issuer string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		issuer:           issuer,
		accessExpMinutes: accessExpMinutes,
	}
}

// GenerateAccessToken signs a token for actor. Used by the token command for
// local testing; production tokens come from the identity provider.
func (s *JWTService) GenerateAccessToken(actor authorization.Actor) (string, time.Time, error) {
	if !actor.IsValid() {
		return "", time.Time{}, ErrInvalidClaims
	}
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		AccountID: actor.AccountID,
		Role:      int(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(uint64(actor.AccountID), 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, exp, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// VerifyActor verifies tokenString and returns the caller it names.
func (s *JWTService) VerifyActor(tokenString string) (authorization.Actor, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return authorization.Actor{}, err
	}
	return claims.Actor()
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
