package dto

type CreateAttributeInput struct {
	NameAr    string `json:"nameAr" validate:"required"`
	NameEn    string `json:"nameEn" validate:"required"`
	ValueType int    `json:"valueType" validate:"required,gt=0"`
}

type UpdateAttributeInput struct {
	ID        int64  `json:"-" validate:"required,gt=0"`
	NameAr    string `json:"nameAr" validate:"required"`
	NameEn    string `json:"nameEn" validate:"required"`
	ValueType int    `json:"valueType" validate:"required,gt=0"`
}
