package repository

import (
	"context"
	"fmt"

	"github.com/TejaVeta/Service-app/internal/data/entity"
	"github.com/TejaVeta/Service-app/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Service, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

const serviceColumns = `id, category_id, title, description, price, duration_minutes, image_url`

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, category_id, title, description, price, duration_minutes, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.CategoryID,
		service.Title,
		service.Description,
		service.Price,
		service.DurationMinutes,
		service.ImageURL,
	)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("title", service.Title),
		)
		return fmt.Errorf("create service %s: %w", service.Title, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	var service entity.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&service.ID,
		&service.CategoryID,
		&service.Title,
		&service.Description,
		&service.Price,
		&service.DurationMinutes,
		&service.ImageURL,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.String(), err)
	}

	return &service, nil
}

func (r *serviceRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE category_id = $1 ORDER BY title`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		r.log.Error("Failed to find services by category ID",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return nil, fmt.Errorf("find services by category ID %s: %w", categoryID.String(), err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		err := rows.Scan(
			&service.ID,
			&service.CategoryID,
			&service.Title,
			&service.Description,
			&service.Price,
			&service.DurationMinutes,
			&service.ImageURL,
		)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}
