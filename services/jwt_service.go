package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminTokenTTL = 7 * 24 * time.Hour

// AdminJWTClaims carries the admin identity and role. The role is trusted
// for route scoping until the token expires.
type AdminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

var jwtService *JWTService

func NewJWTService(secretKey string) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	return &JWTService{secretKey: []byte(secretKey), ttl: adminTokenTTL, now: time.Now}, nil
}

// InitJWTService installs the global admin token service.
func InitJWTService(secretKey string) error {
	svc, err := NewJWTService(secretKey)
	if err != nil {
		return err
	}
	jwtService = svc
	return nil
}

func GetJWTService() *JWTService {
	if jwtService == nil {
		jwtService = &JWTService{secretKey: []byte("dev-secret-key-change-in-production"), ttl: adminTokenTTL, now: time.Now}
	}
	return jwtService
}

// GenerateAdminJWT signs a 7 day admin token.
func (j *JWTService) GenerateAdminJWT(adminID, email, role string) (string, error) {
	if adminID == "" || email == "" || role == "" {
		return "", errors.New("adminID, email and role cannot be empty")
	}

	now := j.now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "dresscollections-cms",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (j *JWTService) VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.AdminID == "" || claims.Email == "" || claims.Role == "" {
		return nil, errors.New("token missing required claims")
	}
	return claims, nil
}

func GenerateAdminJWT(adminID, email, role string) (string, error) {
	return GetJWTService().GenerateAdminJWT(adminID, email, role)
}

func VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	return GetJWTService().VerifyAdminJWT(tokenString)
}
