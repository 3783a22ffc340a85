package dto

type CreateCategoryInput struct {
	NameAr   string `json:"nameAr" validate:"required"`
	NameEn   string `json:"nameEn" validate:"required"`
	ParentID *int64 `json:"parentId" validate:"omitempty,gt=0"`
}

type UpdateCategoryInput struct {
	ID       int64  `json:"-" validate:"required,gt=0"`
	NameAr   string `json:"nameAr" validate:"required"`
	NameEn   string `json:"nameEn" validate:"required"`
	ParentID *int64 `json:"parentId" validate:"omitempty,gt=0"`
}
