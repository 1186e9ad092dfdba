package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikhilpabolu99/bmsproject/entities"
)

// Persistence defines the interface for recording per-(movie, city) query
// summaries. Implementations: FilePersistence, PostgresPersistence
type Persistence interface {
	WriteSummary(ctx context.Context, entry entities.SummaryEntry) error
}

// FilePersistence implements Persistence by appending JSON lines to a file
type FilePersistence struct {
	FilePath string
	mu       sync.Mutex
}

func NewFilePersistence(filePath string) *FilePersistence {
	return &FilePersistence{FilePath: filePath}
}

func (f *FilePersistence) WriteSummary(ctx context.Context, entry entities.SummaryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, err := os.OpenFile(f.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening summary file: %w", err)
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	if err := enc.Encode(entry); err != nil {
		return fmt.Errorf("error writing summary entry: %w", err)
	}
	return nil
}

// PostgresPersistence implements Persistence by writing to the summary table
type PostgresPersistence struct {
	Pool *pgxpool.Pool
}

func NewPostgresPersistence(pool *pgxpool.Pool) *PostgresPersistence {
	return &PostgresPersistence{Pool: pool}
}

func (p *PostgresPersistence) WriteSummary(ctx context.Context, entry entities.SummaryEntry) error {
	_, err := p.Pool.Exec(ctx, `
		INSERT INTO summary (movie, city, show_date, collection, seats_avail, booked_tickets, shows, occupancy_rate, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		entry.Movie,
		entry.City,
		entry.ShowDate,
		entry.Collection,
		entry.SeatsAvail,
		entry.BookedTickets,
		entry.Shows,
		entry.OccupancyRate,
		entry.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting summary entry: %w", err)
	}
	return nil
}
