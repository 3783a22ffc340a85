package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/category/dto"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/souqline/souq-admin-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes for the category and attribute stores.

type fakeCategoryRepo struct {
	categories map[int64]*model.Category
	links      map[int64]*model.CategoryAttribute
	nextID     int64
	nextLinkID int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[int64]*model.Category{},
		links:      map[int64]*model.CategoryAttribute{},
	}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *model.Category) error {
	f.nextID++
	c.ID = f.nextID
	clone := *c
	f.categories[c.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id int64) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(f.categories))
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.categories[id]; ok && !c.IsDeleted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, nameAr, nameEn string) (*model.Category, error) {
	for _, c := range f.categories {
		if !c.IsDeleted && (c.NameAr == nameAr || c.NameEn == nameEn) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *model.Category) error {
	if stored, ok := f.categories[c.ID]; ok && !stored.IsDeleted {
		clone := *c
		f.categories[c.ID] = &clone
	}
	return nil
}

func (f *fakeCategoryRepo) SoftDelete(_ context.Context, id int64, deletedAt time.Time) error {
	if c, ok := f.categories[id]; ok {
		c.IsDeleted = true
		c.DeletedAt = &deletedAt
	}
	return nil
}

func (f *fakeCategoryRepo) CountChildren(_ context.Context, parentID int64) (int, error) {
	count := 0
	for _, c := range f.categories {
		if !c.IsDeleted && c.ParentID != nil && *c.ParentID == parentID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCategoryRepo) FindLink(_ context.Context, categoryID, attributeID int64) (*model.CategoryAttribute, error) {
	for _, l := range f.links {
		if l.CategoryID == categoryID && l.AttributeID == attributeID && !l.IsDeleted {
			clone := *l
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindLinksByCategory(_ context.Context, categoryID int64) ([]model.CategoryAttribute, error) {
	out := []model.CategoryAttribute{}
	for id := int64(1); id <= f.nextLinkID; id++ {
		if l, ok := f.links[id]; ok && l.CategoryID == categoryID && !l.IsDeleted {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindAllLinks(_ context.Context) ([]model.CategoryAttribute, error) {
	out := []model.CategoryAttribute{}
	for id := int64(1); id <= f.nextLinkID; id++ {
		if l, ok := f.links[id]; ok && !l.IsDeleted {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) CreateLink(_ context.Context, l *model.CategoryAttribute) error {
	f.nextLinkID++
	l.ID = f.nextLinkID
	clone := *l
	f.links[l.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) DeleteLink(_ context.Context, id int64) error {
	delete(f.links, id)
	return nil
}

type fakeAttributeRepo struct {
	attributes map[int64]*model.DynamicAttribute
	nextID     int64
}

func newFakeAttributeRepo() *fakeAttributeRepo {
	return &fakeAttributeRepo{attributes: map[int64]*model.DynamicAttribute{}}
}

func (f *fakeAttributeRepo) Create(_ context.Context, a *model.DynamicAttribute) error {
	f.nextID++
	a.ID = f.nextID
	clone := *a
	f.attributes[a.ID] = &clone
	return nil
}

func (f *fakeAttributeRepo) FindByID(_ context.Context, id int64) (*model.DynamicAttribute, error) {
	a, ok := f.attributes[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (f *fakeAttributeRepo) FindAll(_ context.Context) ([]model.DynamicAttribute, error) {
	out := []model.DynamicAttribute{}
	for id := int64(1); id <= f.nextID; id++ {
		if a, ok := f.attributes[id]; ok && !a.IsDeleted {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttributeRepo) FindByName(_ context.Context, nameAr, nameEn string) (*model.DynamicAttribute, error) {
	for _, a := range f.attributes {
		if !a.IsDeleted && (a.NameAr == nameAr || a.NameEn == nameEn) {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeAttributeRepo) Update(_ context.Context, a *model.DynamicAttribute) error {
	if stored, ok := f.attributes[a.ID]; ok && !stored.IsDeleted {
		clone := *a
		f.attributes[a.ID] = &clone
	}
	return nil
}

func (f *fakeAttributeRepo) SoftDelete(_ context.Context, id int64, deletedAt time.Time) error {
	if a, ok := f.attributes[id]; ok {
		a.IsDeleted = true
		a.DeletedAt = &deletedAt
	}
	return nil
}

func seedCategory(t *testing.T, repo *fakeCategoryRepo, nameEn string, parentID *int64) *model.Category {
	t.Helper()
	c := &model.Category{NameAr: nameEn + "-ar", NameEn: nameEn, ParentID: parentID, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func seedAttribute(t *testing.T, repo *fakeAttributeRepo, nameEn string, valueType model.AttributeValueType) *model.DynamicAttribute {
	t.Helper()
	a := &model.DynamicAttribute{NameAr: nameEn + "-ar", NameEn: nameEn, ValueType: valueType, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(catRepo, newFakeAttributeRepo(), logger.NewNop())

	t.Run("defaults to active", func(t *testing.T) {
		cat, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{NameAr: "ألف", NameEn: "alpha"})
		require.NoError(t, err)
		assert.True(t, cat.IsActive)
		assert.NotZero(t, cat.ID)
	})

	t.Run("missing name is a validation failure", func(t *testing.T) {
		_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{NameAr: "", NameEn: "beta"})
		requireKind(t, err, apperror.KindValidation)
	})

	t.Run("absent parent is not-found", func(t *testing.T) {
		_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{NameAr: "باء", NameEn: "beta", ParentID: ptr(999)})
		requireKind(t, err, apperror.KindNotFound)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{NameAr: "أخرى", NameEn: "alpha"})
		requireKind(t, err, apperror.KindConflict)
	})
}

func TestUpdateCategorySelfParent(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(catRepo, newFakeAttributeRepo(), logger.NewNop())

	c := seedCategory(t, catRepo, "alpha", nil)

	_, err := uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{
		ID: c.ID, NameAr: c.NameAr, NameEn: c.NameEn, ParentID: &c.ID,
	})
	requireKind(t, err, apperror.KindValidation)
}

func TestDeleteCategoryBlockedByChildren(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(catRepo, newFakeAttributeRepo(), logger.NewNop())

	root := seedCategory(t, catRepo, "root", nil)
	child := seedCategory(t, catRepo, "child", &root.ID)

	err := uc.DeleteCategory(ctx, root.ID)
	requireKind(t, err, apperror.KindConflict)

	// The category is left unchanged.
	stored, ferr := catRepo.FindByID(ctx, root.ID)
	require.NoError(t, ferr)
	require.NotNil(t, stored)
	assert.False(t, stored.IsDeleted)

	// Once the child is gone the delete goes through.
	require.NoError(t, uc.DeleteCategory(ctx, child.ID))
	require.NoError(t, uc.DeleteCategory(ctx, root.ID))

	gone, ferr := catRepo.FindByID(ctx, root.ID)
	require.NoError(t, ferr)
	assert.Nil(t, gone)
}

func TestToggleActivationIdempotence(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(catRepo, newFakeAttributeRepo(), logger.NewNop())

	c := seedCategory(t, catRepo, "alpha", nil)
	require.True(t, c.IsActive)

	msg, err := uc.ToggleActivation(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, localization.MsgDeactivated, msg)

	stored, _ := catRepo.FindByID(ctx, c.ID)
	assert.False(t, stored.IsActive)

	msg, err = uc.ToggleActivation(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, localization.MsgActivated, msg)

	stored, _ = catRepo.FindByID(ctx, c.ID)
	assert.True(t, stored.IsActive)
}

func TestToggleActivationNotFound(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo(), newFakeAttributeRepo(), logger.NewNop())

	_, err := uc.ToggleActivation(context.Background(), 404)
	requireKind(t, err, apperror.KindNotFound)

	_, err = uc.ToggleActivation(context.Background(), 0)
	requireKind(t, err, apperror.KindValidation)
}

func TestToggleAttributeLink(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	attrRepo := newFakeAttributeRepo()
	uc := NewCategoryUseCase(catRepo, attrRepo, logger.NewNop())

	c := seedCategory(t, catRepo, "alpha", nil)
	a := seedAttribute(t, attrRepo, "color", model.ValueTypeString)

	// First toggle creates the link.
	msg, err := uc.ToggleAttributeLink(ctx, c.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, localization.MsgAttributeLinked, msg)

	l, err := catRepo.FindLink(ctx, c.ID, a.ID)
	require.NoError(t, err)
	require.NotNil(t, l)

	// Second toggle removes it: two calls return to the original state.
	msg, err = uc.ToggleAttributeLink(ctx, c.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, localization.MsgAttributeUnlinked, msg)

	l, err = catRepo.FindLink(ctx, c.ID, a.ID)
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestToggleAttributeLinkValidation(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	attrRepo := newFakeAttributeRepo()
	uc := NewCategoryUseCase(catRepo, attrRepo, logger.NewNop())

	c := seedCategory(t, catRepo, "alpha", nil)

	_, err := uc.ToggleAttributeLink(ctx, 0, 1)
	requireKind(t, err, apperror.KindValidation)

	_, err = uc.ToggleAttributeLink(ctx, c.ID, -5)
	requireKind(t, err, apperror.KindValidation)

	_, err = uc.ToggleAttributeLink(ctx, c.ID, 999)
	requireKind(t, err, apperror.KindNotFound)

	_, err = uc.ToggleAttributeLink(ctx, 999, 1)
	requireKind(t, err, apperror.KindNotFound)
}

func TestCreateAttributeLinkExclusivity(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	attrRepo := newFakeAttributeRepo()
	uc := NewCategoryUseCase(catRepo, attrRepo, logger.NewNop())

	c := seedCategory(t, catRepo, "alpha", nil)
	a := seedAttribute(t, attrRepo, "color", model.ValueTypeString)

	link, err := uc.CreateAttributeLink(ctx, c.ID, a.ID)
	require.NoError(t, err)
	require.NotNil(t, link)

	// A direct second create for the same pair is rejected as a conflict.
	_, err = uc.CreateAttributeLink(ctx, c.ID, a.ID)
	requireKind(t, err, apperror.KindConflict)
}

func TestGetCategoryTreeNotFound(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(catRepo, newFakeAttributeRepo(), logger.NewNop())

	seedCategory(t, catRepo, "root", nil)

	_, err := uc.GetCategoryTree(ctx, 42, localization.English)
	requireKind(t, err, apperror.KindNotFound)
}

func TestGetCategoryForestAttachesSelectedAttributes(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	attrRepo := newFakeAttributeRepo()
	uc := NewCategoryUseCase(catRepo, attrRepo, logger.NewNop())

	root := seedCategory(t, catRepo, "root", nil)
	child := seedCategory(t, catRepo, "child", &root.ID)

	color := seedAttribute(t, attrRepo, "color", model.ValueTypeString)
	weight := seedAttribute(t, attrRepo, "weight", model.ValueTypeNumber)

	_, err := uc.CreateAttributeLink(ctx, child.ID, weight.ID)
	require.NoError(t, err)

	forest, err := uc.GetCategoryForest(ctx, localization.English)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	// Root has no links, child carries only its linked attribute.
	assert.Empty(t, forest[0].DynamicAttributes)
	require.Len(t, forest[0].Children, 1)

	childNode := forest[0].Children[0]
	require.Len(t, childNode.DynamicAttributes, 1)
	assert.Equal(t, weight.ID, childNode.DynamicAttributes[0].ID)
	assert.True(t, childNode.DynamicAttributes[0].IsSelected)
	assert.NotEqual(t, color.ID, childNode.DynamicAttributes[0].ID)
}

func TestGetCategoryAttributesPartition(t *testing.T) {
	ctx := context.Background()
	catRepo := newFakeCategoryRepo()
	attrRepo := newFakeAttributeRepo()
	uc := NewCategoryUseCase(catRepo, attrRepo, logger.NewNop())

	c := seedCategory(t, catRepo, "alpha", nil)
	seedAttribute(t, attrRepo, "color", model.ValueTypeString)
	weight := seedAttribute(t, attrRepo, "weight", model.ValueTypeNumber)

	_, err := uc.CreateAttributeLink(ctx, c.ID, weight.ID)
	require.NoError(t, err)

	out, err := uc.GetCategoryAttributes(ctx, c.ID, localization.English)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.False(t, out[0].IsSelected)
	assert.Equal(t, "color", out[0].Name)
	assert.True(t, out[1].IsSelected)
	assert.Equal(t, "weight", out[1].Name)

	_, err = uc.GetCategoryAttributes(ctx, 999, localization.English)
	requireKind(t, err, apperror.KindNotFound)
}

func requireKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	require.Error(t, err)
	appErr := apperror.As(err)
	assert.Equal(t, kind, appErr.Kind)
}

func ptr(v int64) *int64 { return &v }
