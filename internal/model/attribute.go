package model

import "github.com/souqline/souq-admin-service/internal/localization"

// AttributeValueType is the storage type of a dynamic attribute's values.
type AttributeValueType int

const (
	ValueTypeString  AttributeValueType = 1
	ValueTypeNumber  AttributeValueType = 2
	ValueTypeBoolean AttributeValueType = 3
)

func (t AttributeValueType) Valid() bool {
	return t == ValueTypeString || t == ValueTypeNumber || t == ValueTypeBoolean
}

// Label returns the human-readable value-type label. Unrecognized values map
// to "Unknown" in both languages.
func (t AttributeValueType) Label(lang localization.Language) string {
	ar := lang == localization.Arabic
	switch t {
	case ValueTypeString:
		if ar {
			return "نص"
		}
		return "String"
	case ValueTypeNumber:
		if ar {
			return "رقم"
		}
		return "Number"
	case ValueTypeBoolean:
		if ar {
			return "صحيح/خطأ"
		}
		return "True/False"
	default:
		return "Unknown"
	}
}

type DynamicAttribute struct {
	BaseModel
	SoftDelete
	NameAr    string             `db:"name_ar"`
	NameEn    string             `db:"name_en"`
	ValueType AttributeValueType `db:"value_type"`
	IsActive  bool               `db:"is_active"`
}

func (a *DynamicAttribute) Name(lang localization.Language) string {
	if lang == localization.Arabic {
		return a.NameAr
	}
	return a.NameEn
}

// CategoryAttribute is the many-to-many join row recording that an attribute
// is assignable on a category. Rows are created and hard-deleted as a unit,
// never updated in place.
type CategoryAttribute struct {
	ID          int64 `db:"id"`
	CategoryID  int64 `db:"category_id"`
	AttributeID int64 `db:"attribute_id"`
	IsActive    bool  `db:"is_active"`
	IsDeleted   bool  `db:"is_deleted"`
}
