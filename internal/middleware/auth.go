package middleware

import (
	"errors"
	"fmt"
	"strings"

	apierrors "budgetwise/internal/errors"
	"budgetwise/internal/handlers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccessClaims is the expected shape of an access token issued by the identity
// provider. This service only validates tokens; it never issues them.
type AccessClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RequireAuth creates a middleware that requires a valid HMAC-signed JWT and
// places the authenticated user's ID in the request context under "user_id".
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			token, err := extractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims, err := validateAccessToken(token, secret)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat, apierrors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)

			return next(c)
		}
	}
}

func extractTokenFromHeader(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("invalid authorization header format")
	}
	return parts[1], nil
}

func validateAccessToken(tokenString, secret string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
