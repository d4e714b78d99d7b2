package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"taskhub-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID" // Key to store user ID in context
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewCustomError(http.StatusUnauthorized, message, nil))
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			abortUnauthorized(c, "Invalid Authorization header format")
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			logger.Debug("rejected token", zap.Error(err))
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortUnauthorized(c, "Token has expired")
			} else {
				abortUnauthorized(c, "Invalid token")
			}
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || userID <= 0 {
			logger.Warn("invalid token subject", zap.String("subject", claims.Subject))
			abortUnauthorized(c, "Invalid user identifier in token")
			return
		}

		c.Set(userCtx, userID)
		c.Next()
	}
}

// GetUserIDFromContext returns the user authenticated by JWTAuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (int64, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(int64)
	if !ok {
		return 0, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}
