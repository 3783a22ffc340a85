package attribute

import (
	"context"
	"time"

	"github.com/souqline/souq-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, attribute *model.DynamicAttribute) error
	FindByID(ctx context.Context, id int64) (*model.DynamicAttribute, error)
	FindAll(ctx context.Context) ([]model.DynamicAttribute, error)
	FindByName(ctx context.Context, nameAr, nameEn string) (*model.DynamicAttribute, error)
	Update(ctx context.Context, attribute *model.DynamicAttribute) error
	SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error
}
