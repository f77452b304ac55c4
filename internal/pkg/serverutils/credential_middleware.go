package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"style-match-be/internal/pkg/apperror"
	"style-match-be/internal/repository/contract"
)

// ErrNotConnected is returned by routes that need a Pinterest credential.
var ErrNotConnected = apperror.Unauthorized("Pinterest is not connected yet.", "Complete OAuth first at /auth/pinterest/start")

// RequireCredential rejects the request with 401 until Pinterest is connected.
func RequireCredential(repo contract.CredentialRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if cred, ok := repo.Active(); !ok || cred.AccessToken == "" {
			return ErrNotConnected
		}
		return ctx.Next()
	}
}
