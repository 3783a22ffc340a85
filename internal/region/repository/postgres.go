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

func (r *PGRepository) Create(ctx context.Context, region *model.Region) error {
	query := `
        INSERT INTO regions (name_ar, name_en, parent_id, is_active, is_deleted, created_at, updated_at)
        VALUES (:name_ar, :name_en, :parent_id, :is_active, :is_deleted, :created_at, :updated_at)
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, region)
	if err != nil {
		return err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&region.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Region, error) {
	var region model.Region
	query := `SELECT * FROM regions WHERE id = $1 AND is_deleted = FALSE LIMIT 1`
	err := r.DB.GetContext(ctx, &region, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &region, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Region, error) {
	var regions []model.Region
	query := `SELECT * FROM regions WHERE is_deleted = FALSE ORDER BY id ASC`
	if err := r.DB.SelectContext(ctx, &regions, query); err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *PGRepository) FindByName(ctx context.Context, nameAr, nameEn string) (*model.Region, error) {
	var region model.Region
	query := `SELECT * FROM regions WHERE (name_ar = $1 OR name_en = $2) AND is_deleted = FALSE LIMIT 1`
	err := r.DB.GetContext(ctx, &region, query, nameAr, nameEn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &region, nil
}

func (r *PGRepository) Update(ctx context.Context, region *model.Region) error {
	query := `
        UPDATE regions
        SET name_ar = :name_ar,
            name_en = :name_en,
            parent_id = :parent_id,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND is_deleted = FALSE
    `
	_, err := r.DB.NamedExecContext(ctx, query, region)
	return err
}

func (r *PGRepository) SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error {
	query := `UPDATE regions SET is_deleted = TRUE, deleted_at = $2, updated_at = $2 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, deletedAt)
	return err
}

func (r *PGRepository) CountChildren(ctx context.Context, parentID int64) (int, error) {
	var count int
	query := `SELECT count(*) FROM regions WHERE parent_id = $1 AND is_deleted = FALSE`
	if err := r.DB.GetContext(ctx, &count, query, parentID); err != nil {
		return 0, err
	}
	return count, nil
}
