package model

import "github.com/souqline/souq-admin-service/internal/localization"

type Slider struct {
	BaseModel
	SoftDelete
	TitleAr   string `db:"title_ar"`
	TitleEn   string `db:"title_en"`
	ImageURL  string `db:"image_url"`
	SortOrder int    `db:"sort_order"`
	IsActive  bool   `db:"is_active"`
}

func (s *Slider) Title(lang localization.Language) string {
	if lang == localization.Arabic {
		return s.TitleAr
	}
	return s.TitleEn
}
