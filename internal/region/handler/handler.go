package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/httpapi"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/region"
	"github.com/souqline/souq-admin-service/internal/region/dto"
	"github.com/souqline/souq-admin-service/pkg/logger"
)

type RegionHandler struct {
	uc     region.UseCase
	logger logger.ZapLogger
}

func NewRegionHandler(uc region.UseCase, log logger.ZapLogger) *RegionHandler {
	return &RegionHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *RegionHandler) Register(router fiber.Router) {
	router.Get("/regions", h.GetForest)
	router.Post("/regions", h.Create)
	router.Put("/regions/toggle-activation/:id", h.ToggleActivation)
	router.Put("/regions/:id", h.Update)
	router.Delete("/regions/:id", h.Delete)
}

func (h *RegionHandler) GetForest(c *fiber.Ctx) error {
	forest, err := h.uc.GetRegionForest(c.Context(), httpapi.Lang(c))
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSuccess, forest)
}

func (h *RegionHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateRegionInput
	if err := c.BodyParser(&input); err != nil {
		return httpapi.Fail(c, apperror.Validation(localization.MsgInvalidInput))
	}

	reg, err := h.uc.CreateRegion(c.Context(), &input)
	if err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgSavedSuccessfully, fiber.Map{"id": reg.ID})
}

func (h *RegionHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	var input dto.UpdateRegionInput
	if err := c.BodyParser(&input); err != nil {
		return httpapi.Fail(c, apperror.Validation(localization.MsgInvalidInput))
	}
	input.ID = id

	if _, err := h.uc.UpdateRegion(c.Context(), &input); err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgUpdatedSuccessfully, nil)
}

func (h *RegionHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return httpapi.Fail(c, err)
	}

	if err := h.uc.DeleteRegion(c.Context(), id); err != nil {
		return httpapi.Fail(c, err)
	}
	return httpapi.OK(c, localization.MsgDeletedSuccessfully, nil)
}

func (h *RegionHandler) ToggleActivation(c *fiber.Ctx) error {
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
