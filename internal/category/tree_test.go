package category

import (
	"testing"

	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/category/dto"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cat(id int64, nameEn string, parentID *int64) model.Category {
	return model.Category{
		BaseModel: model.BaseModel{ID: id},
		NameAr:    nameEn + "-ar",
		NameEn:    nameEn,
		ParentID:  parentID,
		IsActive:  true,
	}
}

func ptr(v int64) *int64 { return &v }

func countNodes(nodes []*dto.CategoryNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + countNodes(n.Children)
	}
	return total
}

func collectIDs(nodes []*dto.CategoryNode, into map[int64]int) {
	for _, n := range nodes {
		into[n.ID]++
		collectIDs(n.Children, into)
	}
}

func TestBuildForestGrandchildChain(t *testing.T) {
	cats := []model.Category{
		cat(1, "root", nil),
		cat(2, "child", ptr(1)),
		cat(3, "grandchild", ptr(2)),
	}

	forest := BuildForest(cats, localization.English)

	require.Len(t, forest, 1)
	root := forest[0]
	assert.Equal(t, int64(1), root.ID)
	require.Len(t, root.Children, 1)
	child := root.Children[0]
	assert.Equal(t, int64(2), child.ID)
	require.Len(t, child.Children, 1)
	grandchild := child.Children[0]
	assert.Equal(t, int64(3), grandchild.ID)
	assert.Empty(t, grandchild.Children)
}

func TestBuildForestCompleteness(t *testing.T) {
	cats := []model.Category{
		cat(1, "electronics", nil),
		cat(2, "phones", ptr(1)),
		cat(3, "laptops", ptr(1)),
		cat(4, "android", ptr(2)),
		cat(5, "fashion", nil),
		cat(6, "shoes", ptr(5)),
	}

	forest := BuildForest(cats, localization.English)

	assert.Equal(t, len(cats), countNodes(forest))

	seen := map[int64]int{}
	collectIDs(forest, seen)
	for _, c := range cats {
		assert.Equal(t, 1, seen[c.ID], "category %d must appear exactly once", c.ID)
	}
}

func TestBuildForestRootSelection(t *testing.T) {
	cats := []model.Category{
		cat(1, "a", nil),
		cat(2, "b", nil),
		cat(3, "c", ptr(1)),
	}

	forest := BuildForest(cats, localization.English)

	require.Len(t, forest, 2)
	for _, root := range forest {
		assert.Contains(t, []int64{1, 2}, root.ID)
		for _, child := range root.Children {
			assert.NotContains(t, []int64{1, 2}, child.ID, "roots must never appear as children")
		}
	}
}

func TestBuildForestChildOrderFollowsSnapshot(t *testing.T) {
	cats := []model.Category{
		cat(1, "root", nil),
		cat(9, "zeta", ptr(1)),
		cat(4, "alpha", ptr(1)),
		cat(7, "mid", ptr(1)),
	}

	forest := BuildForest(cats, localization.English)

	require.Len(t, forest, 1)
	got := make([]int64, 0, 3)
	for _, child := range forest[0].Children {
		got = append(got, child.ID)
	}
	// Snapshot order, not sorted by name or id.
	assert.Equal(t, []int64{9, 4, 7}, got)
}

func TestBuildForestOrphanBecomesRoot(t *testing.T) {
	cats := []model.Category{
		cat(1, "root", nil),
		cat(2, "orphan", ptr(99)),
	}

	forest := BuildForest(cats, localization.English)

	assert.Len(t, forest, 2)
}

func TestBuildForestLanguageResolution(t *testing.T) {
	cats := []model.Category{cat(1, "root", nil)}

	en := BuildForest(cats, localization.English)
	ar := BuildForest(cats, localization.Arabic)

	require.Len(t, en, 1)
	require.Len(t, ar, 1)
	assert.Equal(t, "root", en[0].Name)
	assert.Equal(t, "root-ar", ar[0].Name)
}

func TestBuildSubtree(t *testing.T) {
	cats := []model.Category{
		cat(1, "root", nil),
		cat(2, "child", ptr(1)),
		cat(3, "grandchild", ptr(2)),
		cat(4, "other-root", nil),
	}

	node, err := BuildSubtree(cats, 2, localization.English)
	require.NoError(t, err)
	require.NotNil(t, node)

	assert.Equal(t, int64(2), node.ID)
	require.Len(t, node.Children, 1)
	assert.Equal(t, int64(3), node.Children[0].ID)

	// The descendant set is exactly the subtree, nothing from elsewhere.
	seen := map[int64]int{}
	collectIDs([]*dto.CategoryNode{node}, seen)
	assert.Equal(t, map[int64]int{2: 1, 3: 1}, seen)
}

func TestBuildSubtreeNotFound(t *testing.T) {
	cats := []model.Category{cat(1, "root", nil)}

	// Always a typed not-found, never an empty success.
	for i := 0; i < 3; i++ {
		node, err := BuildSubtree(cats, 42, localization.English)
		assert.Nil(t, node)
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	}
}

func TestBuildSubtreeEmptySnapshot(t *testing.T) {
	node, err := BuildSubtree(nil, 1, localization.English)
	assert.Nil(t, node)
	assert.True(t, apperror.IsNotFound(err))
}
