package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/folio-hq/folio/internal/shared/biztime"
)

var (
	// ErrTokenInvalid covers malformed tokens, bad signatures and wrong algorithms.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned for a correctly signed token past its exp claim.
	ErrTokenExpired = errors.New("token expired")
)

const issuer = "folio"

// Claims is the payload of an account session token.
type Claims struct {
	AccountID uint `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies account session tokens.
type TokenIssuer interface {
	Issue(accountID uint) (string, time.Time, error)
	Verify(token string) (*Claims, error)
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, expHours int) *JWTService {
	if expHours <= 0 {
		expHours = 24 * 7
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    time.Duration(expHours) * time.Hour,
	}
}

// Issue signs an HS256 token for accountID and returns it with its expiry.
func (s *JWTService) Issue(accountID uint) (string, time.Time, error) {
	now := biztime.NowUTC()
	exp := now.Add(s.ttl)

	claims := &Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(accountID), 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks the signature first and the expiry second, so an expired
// token with a bad signature reports ErrTokenInvalid.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(biztime.NowUTC))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountID == 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (s *JWTService) TTL() time.Duration {
	return s.ttl
}
