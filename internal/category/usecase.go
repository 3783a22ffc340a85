package category

import (
	"context"

	"github.com/souqline/souq-admin-service/internal/category/dto"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	GetCategoryForest(ctx context.Context, lang localization.Language) ([]*dto.CategoryNode, error)
	GetCategoryTree(ctx context.Context, id int64, lang localization.Language) (*dto.CategoryNode, error)
	GetCategoryAttributes(ctx context.Context, id int64, lang localization.Language) ([]dto.AttributeSelection, error)

	ToggleActivation(ctx context.Context, id int64) (localization.Message, error)
	ToggleAttributeLink(ctx context.Context, categoryID, attributeID int64) (localization.Message, error)
	CreateAttributeLink(ctx context.Context, categoryID, attributeID int64) (*model.CategoryAttribute, error)
}
