package controller

import (
	"studybuddy-be/internal/dto"
	"studybuddy-be/internal/pkg/serverutils"
	"studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStudyController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
}

type studyController struct {
	studyService service.IStudyService
}

func NewStudyController(studyService service.IStudyService) IStudyController {
	return &studyController{
		studyService: studyService,
	}
}

func (c *studyController) RegisterRoutes(r fiber.Router) {
	r.Post("/ai-study", c.CreateSession)
	r.Get("/study-session/:type/:session_id", c.GetSession)
}

func (c *studyController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateStudySessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.studyService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *studyController) GetSession(ctx *fiber.Ctx) error {
	sessionType := ctx.Params("type")
	sessionId := ctx.Params("session_id")

	res, err := c.studyService.GetSession(ctx.Context(), sessionType, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
