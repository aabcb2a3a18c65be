package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"web3jobs/internal/model"
)

// Claims carries the standard registered claims plus the role flags the
// viewer predicate needs.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin         bool `json:"is_admin"`
	IsTrustedPoster bool `json:"is_trusted_poster"`
}

type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

func (g *Generator) Generate(user *model.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		IsAdmin:         user.IsAdmin,
		IsTrustedPoster: user.IsTrustedPoster,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(g.secret)
}

// Parse validates an HS256 token and returns the viewer it encodes.
func Parse(tokenStr, secret, expectedIssuer string) (model.Viewer, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !parsed.Valid {
		return model.Anonymous, jwt.ErrTokenUnverifiable
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return model.Anonymous, jwt.ErrTokenInvalidClaims
	}
	if expectedIssuer != "" && claims.Issuer != expectedIssuer {
		return model.Anonymous, jwt.ErrTokenInvalidIssuer
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Anonymous, jwt.ErrTokenInvalidSubject
	}
	return model.Viewer{
		ID:              id,
		Authenticated:   true,
		IsAdmin:         claims.IsAdmin,
		IsTrustedPoster: claims.IsTrustedPoster,
	}, nil
}
