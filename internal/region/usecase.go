package region

import (
	"context"

	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/souqline/souq-admin-service/internal/region/dto"
)

type UseCase interface {
	CreateRegion(ctx context.Context, input *dto.CreateRegionInput) (*model.Region, error)
	UpdateRegion(ctx context.Context, input *dto.UpdateRegionInput) (*model.Region, error)
	DeleteRegion(ctx context.Context, id int64) error
	GetRegionForest(ctx context.Context, lang localization.Language) ([]*dto.RegionNode, error)
	ToggleActivation(ctx context.Context, id int64) (localization.Message, error)
}
