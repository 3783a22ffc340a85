package region

import (
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/souqline/souq-admin-service/internal/region/dto"
)

// BuildForest mirrors the category forest build for the region hierarchy:
// index by id, then hang each child under its parent in snapshot order.
func BuildForest(regions []model.Region, lang localization.Language) []*dto.RegionNode {
	nodes := make(map[int64]*dto.RegionNode, len(regions))
	for i := range regions {
		r := &regions[i]
		nodes[r.ID] = &dto.RegionNode{
			ID:       r.ID,
			Name:     r.Name(lang),
			IsActive: r.IsActive,
			Children: []*dto.RegionNode{},
		}
	}

	roots := make([]*dto.RegionNode, 0)
	for i := range regions {
		r := &regions[i]
		if r.ParentID != nil {
			if parent, ok := nodes[*r.ParentID]; ok {
				parent.Children = append(parent.Children, nodes[r.ID])
				continue
			}
		}
		roots = append(roots, nodes[r.ID])
	}
	return roots
}
