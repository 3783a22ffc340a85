package category

import (
	"context"
	"time"

	"github.com/souqline/souq-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByName(ctx context.Context, nameAr, nameEn string) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error
	CountChildren(ctx context.Context, parentID int64) (int, error)

	// Category-attribute link store. Link rows are created and hard-deleted
	// as a unit, never updated in place.
	FindLink(ctx context.Context, categoryID, attributeID int64) (*model.CategoryAttribute, error)
	FindLinksByCategory(ctx context.Context, categoryID int64) ([]model.CategoryAttribute, error)
	FindAllLinks(ctx context.Context) ([]model.CategoryAttribute, error)
	CreateLink(ctx context.Context, link *model.CategoryAttribute) error
	DeleteLink(ctx context.Context, id int64) error
}
