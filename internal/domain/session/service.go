package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

const Issuer = "passwordy"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySubject = errors.New("token subject is empty")
)

type Servicer interface {
	Create(ctx context.Context, username string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
}

// Claims - стандартные claims JWT; Subject содержит имя пользователя.
type Claims struct {
	jwt.RegisteredClaims
}

// Service выпускает и проверяет HS256 токены без хранения на сервере.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

func NewService(secret []byte, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
		log:    log.With("component", "session_service"),
	}
}

func (s *Service) Create(_ context.Context, username string) (string, error) {
	if username == "" {
		return "", ErrEmptySubject
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate возвращает имя пользователя из действительного токена.
func (s *Service) Validate(_ context.Context, tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		s.log.Debug("token rejected", "error", err)
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrEmptySubject
	}

	return claims.Subject, nil
}
