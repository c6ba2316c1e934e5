package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored hash. It never
// returns an error: empty or malformed hashes simply fail the check. The
// $2b$ and $2y$ bcrypt prefixes are interchangeable with $2a$ and are
// normalized before comparing, so hashes imported from other stacks verify.
func VerifyPassword(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(normalizeBcryptPrefix(hash)), []byte(password)) == nil
}

func normalizeBcryptPrefix(hash string) string {
	if strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$") {
		return "$2a$" + hash[4:]
	}
	return hash
}

// GenerateToken issues a signed token with subject=userID and a role claim,
// expiring ttl after issuance.
func GenerateToken(secret string, userID int, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SubjectUserID projects the token subject into a user id. The second return
// is false when the subject is missing or not an integer.
func SubjectUserID(claims *Claims) (int, bool) {
	if claims == nil {
		return 0, false
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, false
	}
	return id, true
}
