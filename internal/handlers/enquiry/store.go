// internal/handlers/enquiry/store.go
package enquiry

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"edupath-server/internal/models"

	"github.com/lib/pq"
)

// LeadStore persists captured enquiries.
type LeadStore interface {
	Insert(ctx context.Context, lead *models.Lead) error
	Recent(ctx context.Context, limit int) ([]models.Lead, error)
}

// PostgresStore is the production LeadStore.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, lead *models.Lead) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leads (id, name, email, phone, country_interest, field_of_study, message, source, priority, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.CountryInterest,
		lead.FieldOfStudy, lead.Message, lead.Source, string(lead.Priority), lead.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("lead %s already exists: %w", lead.ID, err)
		}
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]models.Lead, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, country_interest, field_of_study, message, source, priority, created_at
		FROM leads ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		var priority string
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.CountryInterest,
			&l.FieldOfStudy, &l.Message, &l.Source, &priority, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead row: %w", err)
		}
		l.Priority = models.LeadPriority(priority)
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// MemoryStore keeps leads in memory. It backs tests and local development
// when no database is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	leads []models.Lead
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(_ context.Context, lead *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, *lead)
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Lead, 0, limit)
	for i := len(s.leads) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.leads[i])
	}
	return out, nil
}
