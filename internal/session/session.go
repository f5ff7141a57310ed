// Package session implements the signed session cookie and the one-shot
// flash cookie. Session state lives entirely in the client's cookie as an
// HS256-signed token; the server keeps no session table.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"staffdesk/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "session"

const flashCookieName = "flash"

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// CreateToken signs a session token for the given user.
func CreateToken(user *models.User, secret string, expiryHours int) (string, error) {
	expTime := time.Now().Add(time.Duration(expiryHours) * time.Hour)

	claims := &Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a session token and returns the user id and username
// it carries.
func ParseToken(tokenString, secret string) (uint, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	if !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid token subject: %w", err)
	}
	return uint(id), claims.Username, nil
}

// SetCookie stores the session token on the client.
func SetCookie(c *fiber.Ctx, token string, expiryHours int) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(expiryHours) * time.Hour),
		HTTPOnly: true,
	})
}

// ClearCookie logs the client out by expiring the session cookie.
func ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
