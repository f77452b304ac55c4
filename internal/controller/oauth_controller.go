package controller

import (
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"style-match-be/internal/pkg/apperror"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/service"
)

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type OAuthRedirects struct {
	Success string
	Error   string
}

type oauthController struct {
	service   service.IOAuthService
	missing   []string
	redirects OAuthRedirects
	logger    logger.ILogger
}

// NewOAuthController wires the Pinterest login routes. missing lists unset
// OAuth settings; while non-empty both routes answer 500.
func NewOAuthController(service service.IOAuthService, missing []string, redirects OAuthRedirects, log logger.ILogger) IOAuthController {
	return &oauthController{
		service:   service,
		missing:   missing,
		redirects: redirects,
		logger:    log,
	}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/pinterest")
	h.Get("/start", c.Start)
	h.Get("/callback", c.Callback)
}

func (c *oauthController) requireConfig() error {
	if len(c.missing) == 0 {
		return nil
	}
	return apperror.Config("Missing Pinterest OAuth config in .env", c.missing...)
}

func (c *oauthController) Start(ctx *fiber.Ctx) error {
	if err := c.requireConfig(); err != nil {
		return err
	}

	authURL, state, err := c.service.LoginURL()
	if err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     service.StateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int(service.StateTTL.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.Redirect(authURL, fiber.StatusFound)
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	if err := c.requireConfig(); err != nil {
		return err
	}

	if providerErr := ctx.Query("error"); providerErr != "" {
		c.logger.Warn("OAUTH", "Pinterest denied authorization", map[string]interface{}{"reason": providerErr})
		return ctx.Redirect(c.errorURL(providerErr), fiber.StatusFound)
	}

	err := c.service.HandleCallback(ctx.UserContext(), ctx.Query("code"), ctx.Query("state"), ctx.Cookies(service.StateCookieName))
	if errors.Is(err, service.ErrInvalidState) {
		return ctx.Redirect(c.errorURL("state_or_code_invalid"), fiber.StatusFound)
	}
	if err != nil {
		return ctx.Redirect(c.errorURL("token_exchange_failed"), fiber.StatusFound)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     service.StateCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.Redirect(c.redirects.Success, fiber.StatusFound)
}

func (c *oauthController) errorURL(reason string) string {
	u, err := url.Parse(c.redirects.Error)
	if err != nil {
		return c.redirects.Error
	}
	q := u.Query()
	q.Set("reason", reason)
	u.RawQuery = q.Encode()
	return u.String()
}
