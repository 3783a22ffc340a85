package slider

import (
	"context"
	"time"

	"github.com/souqline/souq-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, slider *model.Slider) error
	FindByID(ctx context.Context, id int64) (*model.Slider, error)
	FindAllActive(ctx context.Context) ([]model.Slider, error)
	Update(ctx context.Context, slider *model.Slider) error
	SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error
}
