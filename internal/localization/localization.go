// Package localization implements the binary Arabic/English language switch
// used across the API. Every user-facing message carries both translations;
// the caller's Accept-Language header decides which one is emitted.
package localization

import "strings"

type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// FromHeader resolves the request language from an Accept-Language style
// header value. Anything that does not start with "ar" falls back to English.
func FromHeader(header string) Language {
	header = strings.TrimSpace(strings.ToLower(header))
	if header == "ar" || strings.HasPrefix(header, "ar-") || strings.HasPrefix(header, "ar,") || strings.HasPrefix(header, "ar;") {
		return Arabic
	}
	return English
}

// Message is a bilingual message pair.
type Message struct {
	Ar string
	En string
}

func (m Message) Resolve(lang Language) string {
	if lang == Arabic {
		return m.Ar
	}
	return m.En
}

// Messages emitted by the service.
var (
	MsgSuccess             = Message{Ar: "تمت العملية بنجاح", En: "Operation completed successfully"}
	MsgSavedSuccessfully   = Message{Ar: "تم الحفظ بنجاح", En: "Saved successfully"}
	MsgUpdatedSuccessfully = Message{Ar: "تم التعديل بنجاح", En: "Updated successfully"}
	MsgDeletedSuccessfully = Message{Ar: "تم الحذف بنجاح", En: "Deleted successfully"}
	MsgActivated           = Message{Ar: "تم التفعيل بنجاح", En: "Activated successfully"}
	MsgDeactivated         = Message{Ar: "تم إلغاء التفعيل بنجاح", En: "Deactivated successfully"}
	MsgAttributeLinked     = Message{Ar: "تم إضافة الخاصية للقسم", En: "Attribute linked to category"}
	MsgAttributeUnlinked   = Message{Ar: "تم إزالة الخاصية من القسم", En: "Attribute unlinked from category"}

	MsgInvalidID          = Message{Ar: "المعرف غير صالح", En: "Invalid identifier"}
	MsgInvalidInput       = Message{Ar: "البيانات المدخلة غير صالحة", En: "Invalid input data"}
	MsgCategoryNotFound   = Message{Ar: "القسم غير موجود", En: "Category not found"}
	MsgAttributeNotFound  = Message{Ar: "الخاصية غير موجودة", En: "Attribute not found"}
	MsgRegionNotFound     = Message{Ar: "المنطقة غير موجودة", En: "Region not found"}
	MsgSliderNotFound     = Message{Ar: "الشريحة غير موجودة", En: "Slider not found"}
	MsgParentNotFound     = Message{Ar: "القسم الأب غير موجود", En: "Parent not found"}
	MsgDuplicateName      = Message{Ar: "الاسم مستخدم من قبل", En: "Name already in use"}
	MsgDuplicateLink      = Message{Ar: "الخاصية مرتبطة بالقسم مسبقاً", En: "Attribute is already linked to this category"}
	MsgHasChildren        = Message{Ar: "لا يمكن الحذف لوجود عناصر فرعية", En: "Cannot delete while children exist"}
	MsgSelfParent         = Message{Ar: "لا يمكن أن يكون العنصر أباً لنفسه", En: "An item cannot be its own parent"}
	MsgUnknownValueType   = Message{Ar: "نوع القيمة غير معروف", En: "Unknown value type"}
	MsgErrorWhileSaving   = Message{Ar: "حدث خطأ أثناء الحفظ", En: "An error occurred while saving"}
	MsgErrorWhileFetching = Message{Ar: "حدث خطأ أثناء جلب البيانات", En: "An error occurred while fetching data"}
)
