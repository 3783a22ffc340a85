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

func (r *PGRepository) Create(ctx context.Context, s *model.Slider) error {
	query := `
        INSERT INTO sliders (title_ar, title_en, image_url, sort_order, is_active, is_deleted, created_at, updated_at)
        VALUES (:title_ar, :title_en, :image_url, :sort_order, :is_active, :is_deleted, :created_at, :updated_at)
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, s)
	if err != nil {
		return err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&s.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Slider, error) {
	var slider model.Slider
	query := `SELECT * FROM sliders WHERE id = $1 AND is_deleted = FALSE LIMIT 1`
	err := r.DB.GetContext(ctx, &slider, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &slider, nil
}

func (r *PGRepository) FindAllActive(ctx context.Context) ([]model.Slider, error) {
	var sliders []model.Slider
	query := `SELECT * FROM sliders WHERE is_deleted = FALSE AND is_active = TRUE ORDER BY sort_order ASC, id ASC`
	if err := r.DB.SelectContext(ctx, &sliders, query); err != nil {
		return nil, err
	}
	return sliders, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Slider) error {
	query := `
        UPDATE sliders
        SET title_ar = :title_ar,
            title_en = :title_en,
            image_url = :image_url,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND is_deleted = FALSE
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) SoftDelete(ctx context.Context, id int64, deletedAt time.Time) error {
	query := `UPDATE sliders SET is_deleted = TRUE, deleted_at = $2, updated_at = $2 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, deletedAt)
	return err
}
