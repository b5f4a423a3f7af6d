// Package token issues and validates the HS256 bearer tokens that carry
// the authenticated subject between requests. Tokens are stateless:
// there is no revocation list, a token is good until its expiry.
package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure class reported by Validate.
// Malformed, badly signed and expired tokens are deliberately not
// distinguished in the returned error.
var ErrInvalidToken = errors.New("invalid or expired token")

// Payload is the decoded token content.
type Payload struct {
	Sub string `json:"sub"`
	Iat int64  `json:"iat"`
	Exp int64  `json:"exp"`
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs a token for the given subject, valid from now for the
// configured ttl.
func (s *Service) Issue(sub string) (string, error) {
	now := s.now()
	claims := jwtlib.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
	}
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Validate parses the token, verifies its signature and expiry, and
// returns the decoded payload. Any failure yields ErrInvalidToken.
func (s *Service) Validate(tokenString string) (*Payload, error) {
	parsed, err := jwtlib.ParseWithClaims(
		tokenString,
		&jwtlib.RegisteredClaims{},
		func(tok *jwtlib.Token) (interface{}, error) {
			if tok.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		},
		jwtlib.WithTimeFunc(s.now),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwtlib.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return payloadFromClaims(claims), nil
}

// Decode returns the payload without verifying signature or expiry.
// Diagnostics only; never use the result for authorization.
func (s *Service) Decode(tokenString string) (*Payload, error) {
	var claims jwtlib.RegisteredClaims
	parser := jwtlib.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	return payloadFromClaims(&claims), nil
}

func payloadFromClaims(claims *jwtlib.RegisteredClaims) *Payload {
	payload := &Payload{Sub: claims.Subject}
	if claims.IssuedAt != nil {
		payload.Iat = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		payload.Exp = claims.ExpiresAt.Unix()
	}
	return payload
}
