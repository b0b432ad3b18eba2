package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var ErrInvalidToken = errors.New("invalid session token")

type claims struct {
	jwt.RegisteredClaims
}

// Tokens assina o ID da sessão que vai no cookie, para que um ID não possa ser forjado
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secretKey string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secretKey),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Sign gera o token HS256 com o ID da sessão no subject
func (t *Tokens) Sign(sessionID string) (string, error) {
	now := t.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(t.secret)
}

// Parse valida o token e devolve o ID da sessão
func (t *Tokens) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		return "", errors.Wrap(ErrInvalidToken, err.Error())
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Subject == "" {
		return "", ErrInvalidToken
	}

	return c.Subject, nil
}

// TTL é a validade do token e do cookie
func (t *Tokens) TTL() time.Duration {
	return t.ttl
}
