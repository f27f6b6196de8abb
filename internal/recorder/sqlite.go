package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"CoinRadar/internal/model"
)

// SQLiteRecorder persists result sets to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and ensures the
// result tables exist.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS prices (date TEXT, price REAL)`,
		`CREATE TABLE IF NOT EXISTS trending (name TEXT, symbol TEXT, rsi REAL, signal TEXT)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s, err)
		}
	}
	return nil
}

// ReplacePrices clears the prices table and inserts the given rows inside a
// single transaction, so no partial table is ever observable.
func (r *SQLiteRecorder) ReplacePrices(points []model.PricePoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM prices`); err != nil {
		return fmt.Errorf("clear prices: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO prices (date, price) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, p := range points {
		if _, err := stmt.Exec(p.Date(), p.Price); err != nil {
			return fmt.Errorf("insert price %s: %w", p.Date(), err)
		}
	}
	return tx.Commit()
}

// ReplaceTrending clears the trending table and inserts the given rows in a
// single transaction. An undefined RSI is stored as NULL.
func (r *SQLiteRecorder) ReplaceTrending(rows []model.CoinSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trending`); err != nil {
		return fmt.Errorf("clear trending: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO trending (name, symbol, rsi, signal) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, row := range rows {
		rsi := sql.NullFloat64{Float64: row.RSI.Value, Valid: row.RSI.Valid}
		if _, err := stmt.Exec(row.Name, row.Symbol, rsi, string(row.Signal)); err != nil {
			return fmt.Errorf("insert trending %s: %w", row.Symbol, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
