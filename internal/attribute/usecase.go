package attribute

import (
	"context"

	"github.com/souqline/souq-admin-service/internal/attribute/dto"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
)

type UseCase interface {
	CreateAttribute(ctx context.Context, input *dto.CreateAttributeInput) (*model.DynamicAttribute, error)
	UpdateAttribute(ctx context.Context, input *dto.UpdateAttributeInput) (*model.DynamicAttribute, error)
	DeleteAttribute(ctx context.Context, id int64) error
	ListAttributes(ctx context.Context, lang localization.Language) ([]dto.AttributeView, error)
	ToggleActivation(ctx context.Context, id int64) (localization.Message, error)
}
