package slider

import (
	"context"

	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/souqline/souq-admin-service/internal/slider/dto"
)

type UseCase interface {
	CreateSlider(ctx context.Context, input *dto.CreateSliderInput) (*model.Slider, error)
	UpdateSlider(ctx context.Context, input *dto.UpdateSliderInput) (*model.Slider, error)
	DeleteSlider(ctx context.Context, id int64) error
	ListActiveSliders(ctx context.Context, lang localization.Language) ([]dto.SliderView, error)
	ToggleActivation(ctx context.Context, id int64) (localization.Message, error)
}
