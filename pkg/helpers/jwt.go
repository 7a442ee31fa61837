package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is the fixed validity of a session token.
const SessionTTL = time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// JWTManager signs and verifies session tokens.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration

	now func() time.Time
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{
		Secret: []byte(secret),
		TTL:    SessionTTL,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for minting and verification.
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

func (m *JWTManager) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}

// Claims is the signed session payload: {"id": <userId>} plus registered claims.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// GenerateToken mints a session token for userID.
func (m *JWTManager) GenerateToken(userID string) (string, time.Time, error) {
	now := m.clock()
	exp := now.Add(m.TTL)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseToken verifies signature and expiry. Failures are reported as
// ErrTokenExpired or ErrTokenInvalid, wrapping the library error.
func (m *JWTManager) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	}, jwt.WithTimeFunc(m.clock), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Join(ErrTokenExpired, err)
		}
		return nil, errors.Join(ErrTokenInvalid, err)
	}
	if !tkn.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
