package category

import (
	"github.com/souqline/souq-admin-service/internal/category/dto"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
)

// ResolveAttributeSelection partitions the attribute catalog against a
// category's links. Unselected entries come first, then selected ones; within
// each partition the catalog order is preserved. Every catalog entry appears
// exactly once.
func ResolveAttributeSelection(attributes []model.DynamicAttribute, links []model.CategoryAttribute, lang localization.Language) []dto.AttributeSelection {
	linked := linkedAttributeIDs(links)

	out := make([]dto.AttributeSelection, 0, len(attributes))
	for i := range attributes {
		if !linked[attributes[i].ID] {
			out = append(out, selectionOf(&attributes[i], false, lang))
		}
	}
	for i := range attributes {
		if linked[attributes[i].ID] {
			out = append(out, selectionOf(&attributes[i], true, lang))
		}
	}
	return out
}

// SelectedAttributes returns only the linked catalog entries, in catalog
// order. Used when tree nodes carry their assigned attributes.
func SelectedAttributes(attributes []model.DynamicAttribute, links []model.CategoryAttribute, lang localization.Language) []dto.AttributeSelection {
	linked := linkedAttributeIDs(links)

	out := make([]dto.AttributeSelection, 0)
	for i := range attributes {
		if linked[attributes[i].ID] {
			out = append(out, selectionOf(&attributes[i], true, lang))
		}
	}
	return out
}

func linkedAttributeIDs(links []model.CategoryAttribute) map[int64]bool {
	ids := make(map[int64]bool, len(links))
	for _, l := range links {
		if !l.IsDeleted {
			ids[l.AttributeID] = true
		}
	}
	return ids
}

func selectionOf(a *model.DynamicAttribute, selected bool, lang localization.Language) dto.AttributeSelection {
	return dto.AttributeSelection{
		ID:                 a.ID,
		Name:               a.Name(lang),
		IsActive:           a.IsActive,
		AttributeValueType: a.ValueType.Label(lang),
		IsSelected:         selected,
	}
}
