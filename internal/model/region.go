package model

import "github.com/souqline/souq-admin-service/internal/localization"

// Region is a parent-pointer hierarchy like Category (region > city).
type Region struct {
	BaseModel
	SoftDelete
	NameAr   string `db:"name_ar"`
	NameEn   string `db:"name_en"`
	ParentID *int64 `db:"parent_id"`
	IsActive bool   `db:"is_active"`
}

func (r *Region) Name(lang localization.Language) string {
	if lang == localization.Arabic {
		return r.NameAr
	}
	return r.NameEn
}
