package region

import (
	"testing"

	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reg(id int64, nameEn string, parentID *int64) model.Region {
	return model.Region{
		BaseModel: model.BaseModel{ID: id},
		NameAr:    nameEn + "-ar",
		NameEn:    nameEn,
		ParentID:  parentID,
		IsActive:  true,
	}
}

func ptr(v int64) *int64 { return &v }

func TestBuildForest(t *testing.T) {
	regions := []model.Region{
		reg(1, "Riyadh Province", nil),
		reg(2, "Riyadh", ptr(1)),
		reg(3, "Diriyah", ptr(1)),
		reg(4, "Eastern Province", nil),
	}

	forest := BuildForest(regions, localization.English)

	require.Len(t, forest, 2)
	assert.Equal(t, int64(1), forest[0].ID)
	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, int64(2), forest[0].Children[0].ID)
	assert.Equal(t, int64(3), forest[0].Children[1].ID)
	assert.Equal(t, int64(4), forest[1].ID)
	assert.Empty(t, forest[1].Children)
}

func TestBuildForestArabicNames(t *testing.T) {
	regions := []model.Region{reg(1, "Riyadh", nil)}

	forest := BuildForest(regions, localization.Arabic)

	require.Len(t, forest, 1)
	assert.Equal(t, "Riyadh-ar", forest[0].Name)
}
