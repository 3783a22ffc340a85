package region

import (
	"context"
	"time"

	"github.com/souqline/souq-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, region *model.Region) error
	FindByID(ctx context.Context, id int64) (*model.Region, error)
	FindAll(ctx context.Context) ([]model.Region, error)
	FindByName(ctx context.Context, nameAr, nameEn string) (*model.Region, error)
	Update(ctx context.Context, region *model.Region) error
	SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error
	CountChildren(ctx context.Context, parentID int64) (int, error)
}
