package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/attribute"
	"github.com/souqline/souq-admin-service/internal/attribute/dto"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/souqline/souq-admin-service/pkg/logger"
	"go.uber.org/zap"
)

var validate = validator.New()

type attributeUseCase struct {
	repo   attribute.Repository
	logger logger.ZapLogger
}

func NewAttributeUseCase(repo attribute.Repository, log logger.ZapLogger) attribute.UseCase {
	return &attributeUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *attributeUseCase) CreateAttribute(ctx context.Context, input *dto.CreateAttributeInput) (*model.DynamicAttribute, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperror.Validation(localization.MsgInvalidInput)
	}

	valueType := model.AttributeValueType(input.ValueType)
	if !valueType.Valid() {
		return nil, apperror.Validation(localization.MsgUnknownValueType)
	}

	existing, err := uc.repo.FindByName(ctx, input.NameAr, input.NameEn)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil {
		return nil, apperror.Conflict(localization.MsgDuplicateName)
	}

	now := time.Now()
	attr := &model.DynamicAttribute{
		BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now},
		NameAr:    input.NameAr,
		NameEn:    input.NameEn,
		ValueType: valueType,
		IsActive:  true,
	}

	if err := uc.repo.Create(ctx, attr); err != nil {
		uc.logger.Error("failed to create attribute", zap.Error(err))
		return nil, apperror.Persistence(err)
	}
	return attr, nil
}

func (uc *attributeUseCase) UpdateAttribute(ctx context.Context, input *dto.UpdateAttributeInput) (*model.DynamicAttribute, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperror.Validation(localization.MsgInvalidInput)
	}

	valueType := model.AttributeValueType(input.ValueType)
	if !valueType.Valid() {
		return nil, apperror.Validation(localization.MsgUnknownValueType)
	}

	attr, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if attr == nil {
		return nil, apperror.NotFound(localization.MsgAttributeNotFound)
	}

	existing, err := uc.repo.FindByName(ctx, input.NameAr, input.NameEn)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil && existing.ID != input.ID {
		return nil, apperror.Conflict(localization.MsgDuplicateName)
	}

	attr.NameAr = input.NameAr
	attr.NameEn = input.NameEn
	attr.ValueType = valueType
	attr.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, attr); err != nil {
		uc.logger.Error("failed to update attribute", zap.Error(err), zap.Int64("attribute_id", input.ID))
		return nil, apperror.Persistence(err)
	}
	return attr, nil
}

// DeleteAttribute soft-deletes the catalog entry. Existing link rows are left
// in place; the selector only emits catalog entries, so orphaned links are
// simply ignored.
func (uc *attributeUseCase) DeleteAttribute(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.Validation(localization.MsgInvalidID)
	}

	attr, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Persistence(err)
	}
	if attr == nil {
		return apperror.NotFound(localization.MsgAttributeNotFound)
	}

	if err := uc.repo.SoftDelete(ctx, id, time.Now()); err != nil {
		uc.logger.Error("failed to delete attribute", zap.Error(err), zap.Int64("attribute_id", id))
		return apperror.Persistence(err)
	}
	return nil
}

func (uc *attributeUseCase) ListAttributes(ctx context.Context, lang localization.Language) ([]dto.AttributeView, error) {
	attrs, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	views := make([]dto.AttributeView, 0, len(attrs))
	for i := range attrs {
		a := &attrs[i]
		views = append(views, dto.AttributeView{
			ID:                 a.ID,
			Name:               a.Name(lang),
			IsActive:           a.IsActive,
			AttributeValueType: a.ValueType.Label(lang),
		})
	}
	return views, nil
}

func (uc *attributeUseCase) ToggleActivation(ctx context.Context, id int64) (localization.Message, error) {
	if id <= 0 {
		return localization.Message{}, apperror.Validation(localization.MsgInvalidID)
	}

	attr, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return localization.Message{}, apperror.Persistence(err)
	}
	if attr == nil {
		return localization.Message{}, apperror.NotFound(localization.MsgAttributeNotFound)
	}

	attr.IsActive = !attr.IsActive
	attr.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, attr); err != nil {
		uc.logger.Error("failed to toggle attribute activation", zap.Error(err), zap.Int64("attribute_id", id))
		return localization.Message{}, apperror.Persistence(err)
	}

	if attr.IsActive {
		return localization.MsgActivated, nil
	}
	return localization.MsgDeactivated, nil
}
