package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/attribute"
	"github.com/souqline/souq-admin-service/internal/category"
	"github.com/souqline/souq-admin-service/internal/category/dto"
	"github.com/souqline/souq-admin-service/internal/localization"
	"github.com/souqline/souq-admin-service/internal/model"
	"github.com/souqline/souq-admin-service/pkg/logger"
	"go.uber.org/zap"
)

var validate = validator.New()

const pgUniqueViolation = "23505"

type categoryUseCase struct {
	repo     category.Repository
	attrRepo attribute.Repository
	logger   logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, attrRepo attribute.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		attrRepo: attrRepo,
		logger:   log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperror.Validation(localization.MsgInvalidInput)
	}

	if input.ParentID != nil {
		parent, err := uc.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		if parent == nil {
			return nil, apperror.NotFound(localization.MsgParentNotFound)
		}
	}

	existing, err := uc.repo.FindByName(ctx, input.NameAr, input.NameEn)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil {
		return nil, apperror.Conflict(localization.MsgDuplicateName)
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now},
		NameAr:    input.NameAr,
		NameEn:    input.NameEn,
		ParentID:  input.ParentID,
		IsActive:  true,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		uc.logger.Error("failed to create category", zap.Error(err))
		return nil, apperror.Persistence(err)
	}
	return cat, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperror.Validation(localization.MsgInvalidInput)
	}

	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if cat == nil {
		return nil, apperror.NotFound(localization.MsgCategoryNotFound)
	}

	if input.ParentID != nil {
		// Only the trivial cycle is rejected; deeper cycles are not checked.
		if *input.ParentID == input.ID {
			return nil, apperror.Validation(localization.MsgSelfParent)
		}
		parent, err := uc.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		if parent == nil {
			return nil, apperror.NotFound(localization.MsgParentNotFound)
		}
	}

	existing, err := uc.repo.FindByName(ctx, input.NameAr, input.NameEn)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil && existing.ID != input.ID {
		return nil, apperror.Conflict(localization.MsgDuplicateName)
	}

	cat.NameAr = input.NameAr
	cat.NameEn = input.NameEn
	cat.ParentID = input.ParentID
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		uc.logger.Error("failed to update category", zap.Error(err), zap.Int64("category_id", input.ID))
		return nil, apperror.Persistence(err)
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.Validation(localization.MsgInvalidID)
	}

	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Persistence(err)
	}
	if cat == nil {
		return apperror.NotFound(localization.MsgCategoryNotFound)
	}

	children, err := uc.repo.CountChildren(ctx, id)
	if err != nil {
		return apperror.Persistence(err)
	}
	if children > 0 {
		return apperror.Conflict(localization.MsgHasChildren)
	}

	if err := uc.repo.SoftDelete(ctx, id, time.Now()); err != nil {
		uc.logger.Error("failed to delete category", zap.Error(err), zap.Int64("category_id", id))
		return apperror.Persistence(err)
	}
	return nil
}

func (uc *categoryUseCase) GetCategoryForest(ctx context.Context, lang localization.Language) ([]*dto.CategoryNode, error) {
	cats, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	links, err := uc.repo.FindAllLinks(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	attrs, err := uc.attrRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	linksByCategory := make(map[int64][]model.CategoryAttribute, len(links))
	for _, l := range links {
		linksByCategory[l.CategoryID] = append(linksByCategory[l.CategoryID], l)
	}

	forest := category.BuildForest(cats, lang)
	for _, root := range forest {
		attachAttributes(root, attrs, linksByCategory, lang)
	}
	return forest, nil
}

// attachAttributes fills each node's assigned attributes, recursing down the
// subtree. Depth is bounded by the real hierarchy depth.
func attachAttributes(node *dto.CategoryNode, attrs []model.DynamicAttribute, linksByCategory map[int64][]model.CategoryAttribute, lang localization.Language) {
	node.DynamicAttributes = category.SelectedAttributes(attrs, linksByCategory[node.ID], lang)
	for _, child := range node.Children {
		attachAttributes(child, attrs, linksByCategory, lang)
	}
}

func (uc *categoryUseCase) GetCategoryTree(ctx context.Context, id int64, lang localization.Language) (*dto.CategoryNode, error) {
	if id <= 0 {
		return nil, apperror.Validation(localization.MsgInvalidID)
	}

	// The whole table is loaded so parent links resolve; see BuildSubtree.
	cats, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return category.BuildSubtree(cats, id, lang)
}

func (uc *categoryUseCase) GetCategoryAttributes(ctx context.Context, id int64, lang localization.Language) ([]dto.AttributeSelection, error) {
	if id <= 0 {
		return nil, apperror.Validation(localization.MsgInvalidID)
	}

	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if cat == nil {
		return nil, apperror.NotFound(localization.MsgCategoryNotFound)
	}

	attrs, err := uc.attrRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	links, err := uc.repo.FindLinksByCategory(ctx, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return category.ResolveAttributeSelection(attrs, links, lang), nil
}

func (uc *categoryUseCase) ToggleActivation(ctx context.Context, id int64) (localization.Message, error) {
	if id <= 0 {
		return localization.Message{}, apperror.Validation(localization.MsgInvalidID)
	}

	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return localization.Message{}, apperror.Persistence(err)
	}
	if cat == nil {
		return localization.Message{}, apperror.NotFound(localization.MsgCategoryNotFound)
	}

	// No cascade: children keep their own activation flags.
	cat.IsActive = !cat.IsActive
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		uc.logger.Error("failed to toggle category activation", zap.Error(err), zap.Int64("category_id", id))
		return localization.Message{}, apperror.Persistence(err)
	}

	if cat.IsActive {
		return localization.MsgActivated, nil
	}
	return localization.MsgDeactivated, nil
}

func (uc *categoryUseCase) CreateAttributeLink(ctx context.Context, categoryID, attributeID int64) (*model.CategoryAttribute, error) {
	if categoryID <= 0 || attributeID <= 0 {
		return nil, apperror.Validation(localization.MsgInvalidID)
	}

	cat, err := uc.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if cat == nil {
		return nil, apperror.NotFound(localization.MsgCategoryNotFound)
	}

	attr, err := uc.attrRepo.FindByID(ctx, attributeID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if attr == nil {
		return nil, apperror.NotFound(localization.MsgAttributeNotFound)
	}

	existing, err := uc.repo.FindLink(ctx, categoryID, attributeID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil {
		return nil, apperror.Conflict(localization.MsgDuplicateLink)
	}

	link := &model.CategoryAttribute{
		CategoryID:  categoryID,
		AttributeID: attributeID,
		IsActive:    true,
	}
	if err := uc.repo.CreateLink(ctx, link); err != nil {
		// A lost create race surfaces as a unique violation on the pair index.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict(localization.MsgDuplicateLink)
		}
		uc.logger.Error("failed to create attribute link", zap.Error(err),
			zap.Int64("category_id", categoryID), zap.Int64("attribute_id", attributeID))
		return nil, apperror.Persistence(err)
	}
	return link, nil
}

func (uc *categoryUseCase) ToggleAttributeLink(ctx context.Context, categoryID, attributeID int64) (localization.Message, error) {
	if categoryID <= 0 || attributeID <= 0 {
		return localization.Message{}, apperror.Validation(localization.MsgInvalidID)
	}

	// Check-then-act: concurrent togglers of the same pair can race and leave
	// the link in either state. Accepted behavior.
	link, err := uc.repo.FindLink(ctx, categoryID, attributeID)
	if err != nil {
		return localization.Message{}, apperror.Persistence(err)
	}

	if link == nil {
		if _, err := uc.CreateAttributeLink(ctx, categoryID, attributeID); err != nil {
			return localization.Message{}, err
		}
		return localization.MsgAttributeLinked, nil
	}

	if err := uc.repo.DeleteLink(ctx, link.ID); err != nil {
		uc.logger.Error("failed to delete attribute link", zap.Error(err), zap.Int64("link_id", link.ID))
		return localization.Message{}, apperror.Persistence(err)
	}
	return localization.MsgAttributeUnlinked, nil
}
