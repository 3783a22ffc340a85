package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/souqline/souq-admin-service/internal/slider"
	"github.com/souqline/souq-admin-service/internal/slider/dto"
	"github.com/souqline/souq-admin-service/pkg/logger"
	"go.uber.org/zap"
)

var validate = validator.New()

const cacheTTL = 5 * time.Minute

type sliderUseCase struct {
	repo   slider.Repository
	cache  *redis.Client
	logger logger.ZapLogger
}

// NewSliderUseCase wires the repository and an optional redis client. A nil
// cache disables caching without changing behavior.
func NewSliderUseCase(repo slider.Repository, cache *redis.Client, log logger.ZapLogger) slider.UseCase {
	return &sliderUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func cacheKey(lang localization.Language) string {
	return "sliders:active:" + string(lang)
}

func (uc *sliderUseCase) CreateSlider(ctx context.Context, input *dto.CreateSliderInput) (*model.Slider, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperror.Validation(localization.MsgInvalidInput)
	}

	now := time.Now()
	s := &model.Slider{
		BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now},
		TitleAr:   input.TitleAr,
		TitleEn:   input.TitleEn,
		ImageURL:  input.ImageURL,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		uc.logger.Error("failed to create slider", zap.Error(err))
		return nil, apperror.Persistence(err)
	}
	uc.invalidate(ctx)
	return s, nil
}

func (uc *sliderUseCase) UpdateSlider(ctx context.Context, input *dto.UpdateSliderInput) (*model.Slider, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperror.Validation(localization.MsgInvalidInput)
	}

	s, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if s == nil {
		return nil, apperror.NotFound(localization.MsgSliderNotFound)
	}

	s.TitleAr = input.TitleAr
	s.TitleEn = input.TitleEn
	s.ImageURL = input.ImageURL
	s.SortOrder = input.SortOrder
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Error("failed to update slider", zap.Error(err), zap.Int64("slider_id", input.ID))
		return nil, apperror.Persistence(err)
	}
	uc.invalidate(ctx)
	return s, nil
}

func (uc *sliderUseCase) DeleteSlider(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.Validation(localization.MsgInvalidID)
	}

	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Persistence(err)
	}
	if s == nil {
		return apperror.NotFound(localization.MsgSliderNotFound)
	}

	if err := uc.repo.SoftDelete(ctx, id, time.Now()); err != nil {
		uc.logger.Error("failed to delete slider", zap.Error(err), zap.Int64("slider_id", id))
		return apperror.Persistence(err)
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *sliderUseCase) ListActiveSliders(ctx context.Context, lang localization.Language) ([]dto.SliderView, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cacheKey(lang)).Bytes(); err == nil {
			var views []dto.SliderView
			if err := json.Unmarshal(cached, &views); err == nil {
				return views, nil
			}
		}
	}

	sliders, err := uc.repo.FindAllActive(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	views := make([]dto.SliderView, 0, len(sliders))
	for i := range sliders {
		s := &sliders[i]
		views = append(views, dto.SliderView{
			ID:        s.ID,
			Title:     s.Title(lang),
			ImageURL:  s.ImageURL,
			SortOrder: s.SortOrder,
			IsActive:  s.IsActive,
		})
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(views); err == nil {
			if err := uc.cache.Set(ctx, cacheKey(lang), payload, cacheTTL).Err(); err != nil {
				uc.logger.Warn("failed to cache slider list", zap.Error(err))
			}
		}
	}
	return views, nil
}

func (uc *sliderUseCase) ToggleActivation(ctx context.Context, id int64) (localization.Message, error) {
	if id <= 0 {
		return localization.Message{}, apperror.Validation(localization.MsgInvalidID)
	}

	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return localization.Message{}, apperror.Persistence(err)
	}
	if s == nil {
		return localization.Message{}, apperror.NotFound(localization.MsgSliderNotFound)
	}

	s.IsActive = !s.IsActive
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Error("failed to toggle slider activation", zap.Error(err), zap.Int64("slider_id", id))
		return localization.Message{}, apperror.Persistence(err)
	}
	uc.invalidate(ctx)

	if s.IsActive {
		return localization.MsgActivated, nil
	}
	return localization.MsgDeactivated, nil
}

func (uc *sliderUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys := []string{cacheKey(localization.Arabic), cacheKey(localization.English)}
	if err := uc.cache.Del(ctx, keys...).Err(); err != nil {
		uc.logger.Warn("failed to invalidate slider cache", zap.Error(err))
	}
}
