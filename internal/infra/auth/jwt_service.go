// Package auth verifies access tokens issued by the identity service.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pricealert/config"
	"pricealert/internal/domain/service"
)

const accessTokenType = "access"

// ErrWrongTokenType is returned when a refresh token is presented as an access token.
var ErrWrongTokenType = errors.New("token is not an access token")

// accessClaims is the wire form of an access token.
type accessClaims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// jwtService validates HMAC-signed access tokens.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks signature, expiry and token type, and returns the caller's claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var claims accessClaims
	_, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims.Type != accessTokenType {
		return nil, ErrWrongTokenType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Join(jwt.ErrTokenInvalidSubject, err)
	}

	return &service.Claims{
		UserID:           userID,
		Roles:            claims.Roles,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
