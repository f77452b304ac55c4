package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"style-match-be/internal/dto"
	"style-match-be/internal/pkg/serverutils"
	"style-match-be/internal/repository/contract"
	"style-match-be/internal/service"
)

type IPinterestController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	ListBoards(ctx *fiber.Ctx) error
	ImportBoard(ctx *fiber.Ctx) error
}

type pinterestController struct {
	boardService service.IBoardService
	oauthService service.IOAuthService
	credentials  contract.CredentialRepository
}

func NewPinterestController(
	boardService service.IBoardService,
	oauthService service.IOAuthService,
	credentials contract.CredentialRepository,
) IPinterestController {
	return &pinterestController{
		boardService: boardService,
		oauthService: oauthService,
		credentials:  credentials,
	}
}

func (c *pinterestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pinterest")
	h.Get("/status", c.Status)

	connected := serverutils.RequireCredential(c.credentials)
	h.Get("/boards", connected, c.ListBoards)
	h.Post("/import-board", connected, c.ImportBoard)
}

func (c *pinterestController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(c.oauthService.Status())
}

func (c *pinterestController) ListBoards(ctx *fiber.Ctx) error {
	pageSize := ctx.QueryInt("page_size", service.DefaultBoardPageSize)

	res, err := c.boardService.ListBoards(ctx.UserContext(), pageSize, ctx.Query("bookmark"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *pinterestController) ImportBoard(ctx *fiber.Ctx) error {
	var req dto.ImportBoardRequest
	if err := serverutils.ParseJSONBody(ctx, &req); err != nil {
		return err
	}
	req.BoardId = strings.TrimSpace(req.BoardId)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.boardService.ImportBoard(ctx.UserContext(), req.BoardId, service.ResolveImportLimit(req.Limit))
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ImportBoardResponse{
		BoardId:                 req.BoardId,
		ImportedCount:           len(res.Pins),
		UsableForEmbeddingCount: res.UsableCount,
		LowSignalCount:          res.LowSignalCount,
		CacheFile:               res.Location,
	})
}
