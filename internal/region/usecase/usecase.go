package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/souqline/souq-admin-service/internal/region"
	"github.com/souqline/souq-admin-service/internal/region/dto"
	"github.com/souqline/souq-admin-service/pkg/logger"
	"go.uber.org/zap"
)

var validate = validator.New()

type regionUseCase struct {
	repo   region.Repository
	logger logger.ZapLogger
}

func NewRegionUseCase(repo region.Repository, log logger.ZapLogger) region.UseCase {
	return &regionUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *regionUseCase) CreateRegion(ctx context.Context, input *dto.CreateRegionInput) (*model.Region, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperror.Validation(localization.MsgInvalidInput)
	}

	if input.ParentID != nil {
		parent, err := uc.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		if parent == nil {
			return nil, apperror.NotFound(localization.MsgParentNotFound)
		}
	}

	existing, err := uc.repo.FindByName(ctx, input.NameAr, input.NameEn)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil {
		return nil, apperror.Conflict(localization.MsgDuplicateName)
	}

	now := time.Now()
	reg := &model.Region{
		BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now},
		NameAr:    input.NameAr,
		NameEn:    input.NameEn,
		ParentID:  input.ParentID,
		IsActive:  true,
	}

	if err := uc.repo.Create(ctx, reg); err != nil {
		uc.logger.Error("failed to create region", zap.Error(err))
		return nil, apperror.Persistence(err)
	}
	return reg, nil
}

func (uc *regionUseCase) UpdateRegion(ctx context.Context, input *dto.UpdateRegionInput) (*model.Region, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperror.Validation(localization.MsgInvalidInput)
	}

	reg, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if reg == nil {
		return nil, apperror.NotFound(localization.MsgRegionNotFound)
	}

	if input.ParentID != nil {
		if *input.ParentID == input.ID {
			return nil, apperror.Validation(localization.MsgSelfParent)
		}
		parent, err := uc.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		if parent == nil {
			return nil, apperror.NotFound(localization.MsgParentNotFound)
		}
	}

	existing, err := uc.repo.FindByName(ctx, input.NameAr, input.NameEn)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil && existing.ID != input.ID {
		return nil, apperror.Conflict(localization.MsgDuplicateName)
	}

	reg.NameAr = input.NameAr
	reg.NameEn = input.NameEn
	reg.ParentID = input.ParentID
	reg.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, reg); err != nil {
		uc.logger.Error("failed to update region", zap.Error(err), zap.Int64("region_id", input.ID))
		return nil, apperror.Persistence(err)
	}
	return reg, nil
}

func (uc *regionUseCase) DeleteRegion(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.Validation(localization.MsgInvalidID)
	}

	reg, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Persistence(err)
	}
	if reg == nil {
		return apperror.NotFound(localization.MsgRegionNotFound)
	}

	children, err := uc.repo.CountChildren(ctx, id)
	if err != nil {
		return apperror.Persistence(err)
	}
	if children > 0 {
		return apperror.Conflict(localization.MsgHasChildren)
	}

	if err := uc.repo.SoftDelete(ctx, id, time.Now()); err != nil {
		uc.logger.Error("failed to delete region", zap.Error(err), zap.Int64("region_id", id))
		return apperror.Persistence(err)
	}
	return nil
}

func (uc *regionUseCase) GetRegionForest(ctx context.Context, lang localization.Language) ([]*dto.RegionNode, error) {
	regions, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return region.BuildForest(regions, lang), nil
}

func (uc *regionUseCase) ToggleActivation(ctx context.Context, id int64) (localization.Message, error) {
	if id <= 0 {
		return localization.Message{}, apperror.Validation(localization.MsgInvalidID)
	}

	reg, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return localization.Message{}, apperror.Persistence(err)
	}
	if reg == nil {
		return localization.Message{}, apperror.NotFound(localization.MsgRegionNotFound)
	}

	reg.IsActive = !reg.IsActive
	reg.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, reg); err != nil {
		uc.logger.Error("failed to toggle region activation", zap.Error(err), zap.Int64("region_id", id))
		return localization.Message{}, apperror.Persistence(err)
	}

	if reg.IsActive {
		return localization.MsgActivated, nil
	}
	return localization.MsgDeactivated, nil
}
