package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

type ctxKey struct{}

// Tokens выдаёт и проверяет токены входа в панель. Проверка логина захардкожена
// в конфиге и защитой не является.
type Tokens struct {
	email    string
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewTokens(email, password, secret string, ttl time.Duration) *Tokens {
	return &Tokens{
		email:    email,
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
}

// SignIn проверяет учётные данные и возвращает подписанный токен и время его окончания.
func (t *Tokens) SignIn(email, password string) (string, time.Time, error) {
	if !strings.EqualFold(strings.TrimSpace(email), t.email) || !equal(password, t.password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims := jwt.StandardClaims{
		Subject:   t.email,
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
		Issuer:    "shopfloor",
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth.SignIn: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify возвращает subject токена.
func (t *Tokens) Verify(raw string) (string, error) {
	var claims jwt.StandardClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if !claims.VerifyExpiresAt(t.now().Unix(), true) {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// RequireToken пропускает запросы с "Authorization: Bearer <token>" или ?token= (для websocket).
func (t *Tokens) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("token")
		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			raw = strings.TrimPrefix(h, "Bearer ")
		}

		subject, err := t.Verify(raw)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, subject)))
	})
}

// Subject достаёт пользователя, положенного RequireToken.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(ctxKey{}).(string)
	return s
}
