// internal/handlers/admin/dashboardstats/handler.go
package dashboardstats

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"edupath-server/internal/common/cache"
	apperrors "edupath-server/internal/common/errors"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/web"
	"edupath-server/internal/models"
)

const cacheKey = "admin:dashboard-stats"

// Stats is the dashboard summary: row counts plus the latest enquiries.
type Stats struct {
	TotalLeads      int            `json:"totalLeads"`
	LeadsThisWeek   int            `json:"leadsThisWeek"`
	TotalColleges   int            `json:"totalColleges"`
	TotalBlogPosts  int            `json:"totalBlogPosts"`
	LeadsByPriority map[string]int `json:"leadsByPriority"`
	RecentLeads     []models.Lead  `json:"recentLeads"`
	GeneratedAt     time.Time      `json:"generatedAt"`
}

type Response struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

// Handler serves the admin dashboard summary. Counts come from Postgres and
// are cached briefly since the dashboard polls.
type Handler struct {
	db     *sql.DB
	cache  *cache.Cache
	logger logger.Logger
}

func NewHandler(db *sql.DB, c *cache.Cache, log logger.Logger) *Handler {
	return &Handler{
		db:     db,
		cache:  c,
		logger: log.WithFields(map[string]interface{}{"handler": "dashboardstats"}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var stats Stats
	if h.cache.GetJSON(r.Context(), cacheKey, &stats) {
		web.WriteJSON(w, http.StatusOK, Response{Success: true, Stats: stats})
		return
	}

	stats, err := h.collect(r.Context())
	if err != nil {
		h.logger.Error("dashboard stats query failed", map[string]interface{}{
			"error": err.Error(),
		})
		web.WriteError(w, apperrors.NewQueryExecutionError("could not load dashboard statistics"))
		return
	}

	h.cache.SetJSON(r.Context(), cacheKey, stats)
	web.WriteJSON(w, http.StatusOK, Response{Success: true, Stats: stats})
}

func (h *Handler) collect(ctx context.Context) (Stats, error) {
	stats := Stats{
		LeadsByPriority: make(map[string]int),
		GeneratedAt:     time.Now().UTC(),
	}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM leads`, &stats.TotalLeads},
		{`SELECT COUNT(*) FROM leads WHERE created_at >= NOW() - INTERVAL '7 days'`, &stats.LeadsThisWeek},
		{`SELECT COUNT(*) FROM colleges`, &stats.TotalColleges},
		{`SELECT COUNT(*) FROM blog_posts`, &stats.TotalBlogPosts},
	}
	for _, c := range counts {
		if err := h.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return Stats{}, err
		}
	}

	rows, err := h.db.QueryContext(ctx, `SELECT priority, COUNT(*) FROM leads GROUP BY priority`)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var priority string
		var count int
		if err := rows.Scan(&priority, &count); err != nil {
			return Stats{}, err
		}
		stats.LeadsByPriority[priority] = count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	recent, err := h.recentLeads(ctx, 5)
	if err != nil {
		return Stats{}, err
	}
	stats.RecentLeads = recent

	return stats, nil
}

func (h *Handler) recentLeads(ctx context.Context, limit int) ([]models.Lead, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT id, name, email, source, priority, created_at
		FROM leads ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		var priority string
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Source, &priority, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Priority = models.LeadPriority(priority)
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
