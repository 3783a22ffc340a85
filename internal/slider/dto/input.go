package dto

type CreateSliderInput struct {
	TitleAr   string `json:"titleAr" validate:"required"`
	TitleEn   string `json:"titleEn" validate:"required"`
	ImageURL  string `json:"imageUrl" validate:"required,url"`
	SortOrder int    `json:"sortOrder" validate:"gte=0"`
}

type UpdateSliderInput struct {
	ID        int64  `json:"-" validate:"required,gt=0"`
	TitleAr   string `json:"titleAr" validate:"required"`
	TitleEn   string `json:"titleEn" validate:"required"`
	ImageURL  string `json:"imageUrl" validate:"required,url"`
	SortOrder int    `json:"sortOrder" validate:"gte=0"`
}
