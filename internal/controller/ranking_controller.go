package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"style-match-be/internal/dto"
	"style-match-be/internal/pkg/serverutils"
	"style-match-be/internal/service"
)

type IRankingController interface {
	RegisterRoutes(r fiber.Router)
	RankProducts(ctx *fiber.Ctx) error
}

type rankingController struct {
	service service.IRankingService
}

func NewRankingController(service service.IRankingService) IRankingController {
	return &rankingController{service: service}
}

func (c *rankingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai")
	h.Post("/rank-products", c.RankProducts)
}

func (c *rankingController) RankProducts(ctx *fiber.Ctx) error {
	var req dto.RankProductsRequest
	if err := serverutils.ParseJSONBody(ctx, &req); err != nil {
		return err
	}
	req.BoardId = strings.TrimSpace(req.BoardId)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RankProducts(ctx.UserContext(), req.BoardId, service.ResolveTopK(req.TopK))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
