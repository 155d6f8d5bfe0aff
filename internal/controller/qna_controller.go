package controller

import (
	"studybuddy-be/internal/dto"
	"studybuddy-be/internal/pkg/serverutils"
	"studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQnaController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
}

type qnaController struct {
	qnaService service.IQnaService
}

func NewQnaController(qnaService service.IQnaService) IQnaController {
	return &qnaController{
		qnaService: qnaService,
	}
}

func (c *qnaController) RegisterRoutes(r fiber.Router) {
	r.Post("/qna", c.Ask)
}

func (c *qnaController) Ask(ctx *fiber.Ctx) error {
	var req dto.QnaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.qnaService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
