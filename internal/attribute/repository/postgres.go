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

func (r *PGRepository) Create(ctx context.Context, a *model.DynamicAttribute) error {
	query := `
        INSERT INTO dynamic_attributes (name_ar, name_en, value_type, is_active, is_deleted, created_at, updated_at)
        VALUES (:name_ar, :name_en, :value_type, :is_active, :is_deleted, :created_at, :updated_at)
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, a)
	if err != nil {
		return err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&a.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.DynamicAttribute, error) {
	var attribute model.DynamicAttribute
	query := `SELECT * FROM dynamic_attributes WHERE id = $1 AND is_deleted = FALSE LIMIT 1`
	err := r.DB.GetContext(ctx, &attribute, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.DynamicAttribute, error) {
	var attributes []model.DynamicAttribute
	query := `SELECT * FROM dynamic_attributes WHERE is_deleted = FALSE ORDER BY id ASC`
	if err := r.DB.SelectContext(ctx, &attributes, query); err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *PGRepository) FindByName(ctx context.Context, nameAr, nameEn string) (*model.DynamicAttribute, error) {
	var attribute model.DynamicAttribute
	query := `SELECT * FROM dynamic_attributes WHERE (name_ar = $1 OR name_en = $2) AND is_deleted = FALSE LIMIT 1`
	err := r.DB.GetContext(ctx, &attribute, query, nameAr, nameEn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *PGRepository) Update(ctx context.Context, a *model.DynamicAttribute) error {
	query := `
        UPDATE dynamic_attributes
        SET name_ar = :name_ar,
            name_en = :name_en,
            value_type = :value_type,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND is_deleted = FALSE
    `
	_, err := r.DB.NamedExecContext(ctx, query, a)
	return err
}

func (r *PGRepository) SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error {
	query := `UPDATE dynamic_attributes SET is_deleted = TRUE, deleted_at = $2, updated_at = $2 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, deletedAt)
	return err
}
