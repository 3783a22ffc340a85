package category

import (
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/category/dto"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
)

// BuildForest converts a flat snapshot of categories into a forest of
// presentation nodes. Two linear passes over the input: one to index every
// record by id, one to hang each non-root node under its parent. Children
// keep the snapshot's iteration order; callers must not assume any sort.
// Every input record appears exactly once in the result.
func BuildForest(categories []model.Category, lang localization.Language) []*dto.CategoryNode {
	nodes := make(map[int64]*dto.CategoryNode, len(categories))
	for i := range categories {
		c := &categories[i]
		nodes[c.ID] = &dto.CategoryNode{
			ID:                c.ID,
			Name:              c.Name(lang),
			IsActive:          c.IsActive,
			Children:          []*dto.CategoryNode{},
			DynamicAttributes: []dto.AttributeSelection{},
		}
	}

	roots := make([]*dto.CategoryNode, 0)
	for i := range categories {
		c := &categories[i]
		if c.ParentID != nil {
			if parent, ok := nodes[*c.ParentID]; ok {
				parent.Children = append(parent.Children, nodes[c.ID])
				continue
			}
			// Parent missing from the snapshot (e.g. soft-deleted):
			// the node is orphaned and surfaces as a root.
		}
		roots = append(roots, nodes[c.ID])
	}
	return roots
}

// BuildSubtree builds the same forest and returns only the node matching
// rootID with its descendants attached. The whole snapshot is still walked
// so parent links resolve correctly; cost is O(total categories), not
// O(subtree size).
func BuildSubtree(categories []model.Category, rootID int64, lang localization.Language) (*dto.CategoryNode, error) {
	nodes := make(map[int64]*dto.CategoryNode, len(categories))
	for i := range categories {
		c := &categories[i]
		nodes[c.ID] = &dto.CategoryNode{
			ID:                c.ID,
			Name:              c.Name(lang),
			IsActive:          c.IsActive,
			Children:          []*dto.CategoryNode{},
			DynamicAttributes: []dto.AttributeSelection{},
		}
	}

	root, ok := nodes[rootID]
	if !ok {
		return nil, apperror.NotFound(localization.MsgCategoryNotFound)
	}

	for i := range categories {
		c := &categories[i]
		if c.ParentID == nil {
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Children = append(parent.Children, nodes[c.ID])
		}
	}
	return root, nil
}
