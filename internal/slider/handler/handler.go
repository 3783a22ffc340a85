package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/httpapi"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/slider"
	"github.com/souqline/souq-admin-service/internal/slider/dto"
	"github.com/souqline/souq-admin-service/pkg/logger"
)

type SliderHandler struct {
	uc     slider.UseCase
	logger logger.ZapLogger
}

func NewSliderHandler(uc slider.UseCase, log logger.ZapLogger) *SliderHandler {
	return &SliderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SliderHandler) Register(router fiber.Router) {
	router.Get("/sliders", h.List)
	router.Post("/sliders", h.Create)
	router.Put("/sliders/toggle-activation/:id", h.ToggleActivation)
	router.Put("/sliders/:id", h.Update)
	router.Delete("/sliders/:id", h.Delete)
}

func (h *SliderHandler) List(c *fiber.Ctx) error {
	views, err := h.uc.ListActiveSliders(c.Context(), httpapi.Lang(c))
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSuccess, views)
}

func (h *SliderHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateSliderInput
	if err := c.BodyParser(&input); err != nil {
		return httpapi.Fail(c, apperror.Validation(localization.MsgInvalidInput))
	}

	s, err := h.uc.CreateSlider(c.Context(), &input)
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSavedSuccessfully, fiber.Map{"id": s.ID})
}

func (h *SliderHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	var input dto.UpdateSliderInput
	if err := c.BodyParser(&input); err != nil {
		return httpapi.Fail(c, apperror.Validation(localization.MsgInvalidInput))
	}
	input.ID = id

	if _, err := h.uc.UpdateSlider(c.Context(), &input); err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgUpdatedSuccessfully, nil)
}

func (h *SliderHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	if err := h.uc.DeleteSlider(c.Context(), id); err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgDeletedSuccessfully, nil)
}

func (h *SliderHandler) ToggleActivation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	msg, err := h.uc.ToggleActivation(c.Context(), id)
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, msg, nil)
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation(localization.MsgInvalidID)
	}
	return id, nil
}
