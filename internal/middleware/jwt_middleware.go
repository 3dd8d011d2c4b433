package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"gamestore/internal/services"
)

// AuthRequired rejects requests without a valid bearer token and exposes
// the token's identity claims to downstream handlers via Locals, keyed by
// the same claim names the auth service signs into the token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !ok || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Bearer token required",
			})
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals(services.ClaimUserID, claims[services.ClaimUserID])
		c.Locals(services.ClaimUsername, claims[services.ClaimUsername])
		return c.Next()
	}
}
