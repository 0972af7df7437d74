package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

type JWTServiceInterface interface {
	GenerateJWT(principal domain.Principal, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Issuer is the iss claim the identity provider signs tokens with.
const Issuer = "taskearn"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// Principal converts verified claims into the acting identity.
func (c *Claims) Principal() (domain.Principal, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil || id == uuid.Nil {
		return domain.Principal{}, fmt.Errorf("user_id claim: %w", ErrInvalidToken)
	}
	role := domain.Role(c.Role)
	switch role {
	case domain.RoleUser, domain.RoleAdvertiser, domain.RoleAdmin, domain.RoleSystem:
	default:
		return domain.Principal{}, fmt.Errorf("role claim %q: %w", c.Role, ErrInvalidToken)
	}
	return domain.Principal{UserID: id, Email: c.Email, Role: role}, nil
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(principal domain.Principal, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID: principal.UserID.String(),
		Email:  principal.Email,
		Role:   string(principal.Role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" || claims.Issuer != Issuer {
		return nil, fmt.Errorf("claims: %w", ErrInvalidToken)
	}

	return claims, nil
}
