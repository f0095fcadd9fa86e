package repositories

import (
	"context"
	"strings"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/jmoiron/sqlx"
)

// VisitWriteRepository persists tracked visits.
type VisitWriteRepository struct {
	db *sqlx.DB
}

func NewVisitWriteRepository(db *sqlx.DB) *VisitWriteRepository {
	return &VisitWriteRepository{db: db}
}

// Save inserts a visit record.
func (r *VisitWriteRepository) Save(ctx context.Context, v *models.Visit) error {
	query := `
		INSERT INTO visits (visit_id, ip, hostname, city, region, country, location,
		                    org, postal, timezone, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	args := []any{
		v.VisitID, v.IP, v.Hostname, v.City, v.Region, v.Country, v.Location,
		v.Org, v.Postal, v.Timezone, v.UserAgent, v.CreatedAt,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{v.VisitID, v.IP},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// VisitReadRepository lists tracked visits.
type VisitReadRepository struct {
	db *sqlx.DB
}

func NewVisitReadRepository(db *sqlx.DB) *VisitReadRepository {
	return &VisitReadRepository{db: db}
}

// ListRecent returns the most recent visits, newest first.
func (r *VisitReadRepository) ListRecent(ctx context.Context, limit int) ([]models.Visit, error) {
	query := `
		SELECT visit_id, ip, hostname, city, region, country, location,
		       org, postal, timezone, user_agent, created_at
		FROM visits
		ORDER BY created_at DESC
		LIMIT $1
	`

	visits := []models.Visit{}
	err := r.db.SelectContext(ctx, &visits, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(visits),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return visits, nil
}
