package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"skywatch/milmon/internal/constants"
	"skywatch/milmon/internal/models"
	gormmodels "skywatch/milmon/internal/models/gorm"
)

// AlertRepo persists alert events and serves the history/stats reads.
// CRUD goes through GORM; the aggregate query uses a raw sqlx path.
type AlertRepo struct {
	db     *gorm.DB
	sqlxDB *sqlx.DB
}

func NewAlertRepo(db *gorm.DB, sqlxDB *sqlx.DB) *AlertRepo {
	return &AlertRepo{db: db, sqlxDB: sqlxDB}
}

// Insert stores a batch of alert events.
func (r *AlertRepo) Insert(ctx context.Context, events []models.AlertEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]gormmodels.AlertEvent, 0, len(events))
	for _, ev := range events {
		rows = append(rows, gormmodels.AlertEvent{
			ID:        ev.ID,
			Hex:       ev.Hex,
			Callsign:  ev.Callsign,
			TypeCode:  ev.TypeCode,
			Owner:     ev.Owner,
			Category:  string(ev.Category),
			EmittedAt: ev.Timestamp,
		})
	}

	return r.db.WithContext(ctx).CreateInBatches(rows, 100).Error
}

// History returns the most recent persisted alerts, newest first.
func (r *AlertRepo) History(ctx context.Context, limit int) ([]models.AlertEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var rows []gormmodels.AlertEvent
	err := r.db.WithContext(ctx).
		Order("emitted_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.AlertEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.AlertEvent{
			ID:        row.ID,
			Hex:       row.Hex,
			Callsign:  row.Callsign,
			TypeCode:  row.TypeCode,
			Owner:     row.Owner,
			Category:  models.Category(row.Category),
			Timestamp: row.EmittedAt,
		})
	}
	return out, nil
}

// CategoryCount is one row of the per-category alert totals.
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Total    int64  `db:"total" json:"total"`
}

// CountsByCategory aggregates all persisted alerts by category.
func (r *AlertRepo) CountsByCategory(ctx context.Context) ([]CategoryCount, error) {
	var counts []CategoryCount
	if err := r.sqlxDB.SelectContext(ctx, &counts, constants.AlertCountsByCategory); err != nil {
		return nil, err
	}
	return counts, nil
}
