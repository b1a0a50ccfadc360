package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mbanq-accounts/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL applies when neither the caller nor config set a lifetime.
const DefaultSessionTTL = 30 * time.Minute

// JWTTokenService implements ports.TokenService using HS256 JWT.
// It does not interpret claims beyond the registered exp/iat/iss.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTTokenService creates a new JWT token service. expiry is the default ttl.
func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	if expiry <= 0 {
		expiry = DefaultSessionTTL
	}
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue signs claims with an absolute expiry of now+ttl (second precision).
func (s *JWTTokenService) Issue(claims ports.Claims, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.expiry
	}
	now := s.now()
	expiresAt := now.Add(ttl).Truncate(time.Second)

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = expiresAt.Unix()
	mc["iat"] = now.Unix()
	if s.issuer != "" {
		mc["iss"] = s.issuer
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify returns the issued claims plus "exp" (unix seconds, int64).
// A token is expired from its exp second onwards.
func (s *JWTTokenService) Verify(tokenString string) (ports.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
		jwt.WithJSONNumber(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	mc := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, mc, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ports.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ports.ErrTokenInvalid, err)
	}

	out := make(ports.Claims, len(mc))
	for k, v := range mc {
		if k == "iat" || k == "iss" {
			continue
		}
		out[k] = normalizeClaim(v)
	}
	return out, nil
}

// normalizeClaim turns JSON numbers back into int64 where they are integral.
func normalizeClaim(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
