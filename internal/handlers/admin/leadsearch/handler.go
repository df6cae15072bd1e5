// internal/handlers/admin/leadsearch/handler.go
package leadsearch

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "edupath-server/internal/common/errors"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/web"
	"edupath-server/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const (
	leadsIndex   = "leads"
	defaultLimit = 20
	maxLimit     = 100
)

// Params are the query-string search controls.
type Params struct {
	Query    string
	Priority string
	Source   string
	Limit    int
}

type Response struct {
	Success bool          `json:"success"`
	Leads   []models.Lead `json:"leads"`
	Total   int           `json:"total"`
	Engine  string        `json:"engine"`
}

// Handler serves the admin lead search. Elasticsearch answers when it is
// configured and healthy; otherwise a Postgres ILIKE scan stands in, with
// the response naming which engine ran.
type Handler struct {
	es     *elasticsearch.Client
	db     *sql.DB
	logger logger.Logger
}

func NewHandler(es *elasticsearch.Client, db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		es:     es,
		db:     db,
		logger: log.WithFields(map[string]interface{}{"handler": "leadsearch"}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := parseParams(r)

	if h.es != nil {
		leads, total, err := h.searchElasticsearch(r.Context(), params)
		if err == nil {
			web.WriteJSON(w, http.StatusOK, Response{Success: true, Leads: leads, Total: total, Engine: "elasticsearch"})
			return
		}
		h.logger.Warn("elasticsearch lead search failed, falling back to database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	leads, err := h.searchPostgres(r.Context(), params)
	if err != nil {
		h.logger.Error("lead search failed", map[string]interface{}{
			"error": err.Error(),
		})
		web.WriteError(w, apperrors.NewQueryExecutionError("lead search failed"))
		return
	}
	web.WriteJSON(w, http.StatusOK, Response{Success: true, Leads: leads, Total: len(leads), Engine: "postgres"})
}

func parseParams(r *http.Request) *Params {
	q := r.URL.Query()
	params := &Params{
		Query:    strings.TrimSpace(q.Get("q")),
		Priority: q.Get("priority"),
		Source:   q.Get("source"),
		Limit:    defaultLimit,
	}
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			params.Limit = n
		}
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}
	return params
}

func (h *Handler) searchElasticsearch(ctx context.Context, params *Params) ([]models.Lead, int, error) {
	body, _ := json.Marshal(buildLeadQuery(params))

	req := esapi.SearchRequest{
		Index: []string{leadsIndex},
		Body:  strings.NewReader(string(body)),
		Size:  &params.Limit,
	}
	res, err := req.Do(ctx, h.es)
	if err != nil {
		return nil, 0, fmt.Errorf("search request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, 0, fmt.Errorf("search error: %s", res.Status())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Lead `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, 0, fmt.Errorf("decode search response: %w", err)
	}

	leads := make([]models.Lead, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		leads = append(leads, hit.Source)
	}
	return leads, result.Hits.Total.Value, nil
}

func (h *Handler) searchPostgres(ctx context.Context, params *Params) ([]models.Lead, error) {
	query := `
		SELECT id, name, email, phone, country_interest, field_of_study, message, source, priority, created_at
		FROM leads WHERE 1=1`
	var args []interface{}

	if params.Query != "" {
		args = append(args, "%"+params.Query+"%")
		n := strconv.Itoa(len(args))
		query += ` AND (name ILIKE $` + n + ` OR email ILIKE $` + n +
			` OR message ILIKE $` + n + ` OR field_of_study ILIKE $` + n +
			` OR country_interest ILIKE $` + n + `)`
	}
	if params.Priority != "" {
		args = append(args, params.Priority)
		query += ` AND priority = $` + strconv.Itoa(len(args))
	}
	if params.Source != "" {
		args = append(args, params.Source)
		query += ` AND source = $` + strconv.Itoa(len(args))
	}

	args = append(args, params.Limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
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
