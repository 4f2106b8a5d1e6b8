package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"dompetku/internal/repository/sqlite/migrations"
)

// DB wraps a SQLite database handle and hands out the repositories
// backed by it.
type DB struct {
	sqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.sqlDB)
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.sqlDB.Close()
}

// Users returns the user repository.
func (d *DB) Users() *UserRepository {
	return &UserRepository{db: d.sqlDB}
}

// Transactions returns the transaction repository.
func (d *DB) Transactions() *TransactionRepository {
	return &TransactionRepository{db: d.sqlDB}
}

// Debts returns the debt repository.
func (d *DB) Debts() *DebtRepository {
	return &DebtRepository{db: d.sqlDB}
}

// SavingsGoals returns the savings goal repository.
func (d *DB) SavingsGoals() *SavingsGoalRepository {
	return &SavingsGoalRepository{db: d.sqlDB}
}

// Stats returns the aggregation query repository.
func (d *DB) Stats() *StatsRepository {
	return &StatsRepository{db: d.sqlDB}
}
