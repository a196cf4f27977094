package jwtverifier

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("jwtverifier: invalid token")
	ErrExpiredToken = errors.New("jwtverifier: token expired")
)

// Claims access-токена провайдера идентификации (GoTrue/Supabase)
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Identity проверенная личность из токена
type Identity struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// Verifier проверяет HS256-подписанные access-токены
type Verifier struct {
	secret []byte
	leeway time.Duration
}

func New(secret string, leeway time.Duration) *Verifier {
	return &Verifier{secret: []byte(secret), leeway: leeway}
}

// Verify проверяет подпись и срок действия токена и извлекает личность пользователя
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	}, jwt.WithLeeway(v.leeway), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Sign подписывает claims тем же секретом. Используется в тестах и локальной разработке.
func (v *Verifier) Sign(userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
