package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormStatsRepository answers diagnostic queries for the health endpoint
type GormStatsRepository struct {
	db     *gorm.DB
	dbName string
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB, dbName string) StatsRepository {
	return &GormStatsRepository{db: db, dbName: dbName}
}

// ActiveQueries counts the backend connections on this database. Dialects
// without a server process list report the pool's in-use connections.
func (r *GormStatsRepository) ActiveQueries(ctx context.Context) (int64, error) {
	var count int64
	db := r.db.WithContext(ctx)

	switch r.db.Dialector.Name() {
	case "postgres":
		err := db.Raw("SELECT COUNT(*) FROM pg_stat_activity WHERE datname = ?", r.dbName).Scan(&count).Error
		return count, err
	case "mysql":
		err := db.Raw("SELECT COUNT(*) FROM information_schema.processlist WHERE db = ?", r.dbName).Scan(&count).Error
		return count, err
	default:
		sqlDB, err := r.db.DB()
		if err != nil {
			return 0, err
		}
		return int64(sqlDB.Stats().InUse), nil
	}
}
