package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/souqline/souq-admin-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (name_ar, name_en, parent_id, is_active, is_deleted, created_at, updated_at)
        VALUES (:name_ar, :name_en, :parent_id, :is_active, :is_deleted, :created_at, :updated_at)
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, c)
	if err != nil {
		return err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&c.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE id = $1 AND is_deleted = FALSE LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	query := `SELECT * FROM categories WHERE is_deleted = FALSE ORDER BY id ASC`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PGRepository) FindByName(ctx context.Context, nameAr, nameEn string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE (name_ar = $1 OR name_en = $2) AND is_deleted = FALSE LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, nameAr, nameEn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name_ar = :name_ar,
            name_en = :name_en,
            parent_id = :parent_id,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND is_deleted = FALSE
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error {
	query := `UPDATE categories SET is_deleted = TRUE, deleted_at = $2, updated_at = $2 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, deletedAt)
	return err
}

func (r *PGRepository) CountChildren(ctx context.Context, parentID int64) (int, error) {
	var count int
	query := `SELECT count(*) FROM categories WHERE parent_id = $1 AND is_deleted = FALSE`
	if err := r.DB.GetContext(ctx, &count, query, parentID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PGRepository) FindLink(ctx context.Context, categoryID, attributeID int64) (*model.CategoryAttribute, error) {
	var link model.CategoryAttribute
	query := `
        SELECT id, category_id, attribute_id, is_active, is_deleted
        FROM category_attributes
        WHERE category_id = $1 AND attribute_id = $2 AND is_deleted = FALSE
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &link, query, categoryID, attributeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *PGRepository) FindLinksByCategory(ctx context.Context, categoryID int64) ([]model.CategoryAttribute, error) {
	var links []model.CategoryAttribute
	query := `
        SELECT id, category_id, attribute_id, is_active, is_deleted
        FROM category_attributes
        WHERE category_id = $1 AND is_deleted = FALSE
        ORDER BY id ASC
    `
	if err := r.DB.SelectContext(ctx, &links, query, categoryID); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PGRepository) FindAllLinks(ctx context.Context) ([]model.CategoryAttribute, error) {
	var links []model.CategoryAttribute
	query := `
        SELECT id, category_id, attribute_id, is_active, is_deleted
        FROM category_attributes
        WHERE is_deleted = FALSE
        ORDER BY id ASC
    `
	if err := r.DB.SelectContext(ctx, &links, query); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PGRepository) CreateLink(ctx context.Context, link *model.CategoryAttribute) error {
	query := `
        INSERT INTO category_attributes (category_id, attribute_id, is_active, is_deleted)
        VALUES (:category_id, :attribute_id, :is_active, :is_deleted)
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, link)
	if err != nil {
		return err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&link.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

// DeleteLink hard-removes the join row. Link rows are small and inert, so
// unlinking is a physical delete rather than the soft-delete used elsewhere.
func (r *PGRepository) DeleteLink(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM category_attributes WHERE id = $1`, id)
	return err
}
