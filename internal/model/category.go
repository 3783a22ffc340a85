package model

import "github.com/souqline/souq-admin-service/internal/localization"

type Category struct {
	BaseModel
	SoftDelete
	NameAr   string `db:"name_ar"`
	NameEn   string `db:"name_en"`
	ParentID *int64 `db:"parent_id"` // Nullable, root categories have no parent
	IsActive bool   `db:"is_active"`
}

// Name resolves the bilingual pair for the given language.
func (c *Category) Name(lang localization.Language) string {
	if lang == localization.Arabic {
		return c.NameAr
	}
	return c.NameEn
}
