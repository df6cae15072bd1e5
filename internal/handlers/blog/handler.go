// internal/handlers/blog/handler.go
package blog

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"edupath-server/internal/common/cache"
	apperrors "edupath-server/internal/common/errors"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/web"
	"edupath-server/internal/models"

	"github.com/lib/pq"
)

const listCacheKey = "blog:list"

type listResponse struct {
	Success bool              `json:"success"`
	Posts   []models.BlogPost `json:"posts"`
	Total   int               `json:"total"`
}

type postResponse struct {
	Success bool            `json:"success"`
	Post    models.BlogPost `json:"post"`
}

// Handler serves the public blog listing and single-post lookups from
// Postgres, with a short-lived Redis cache in front of the listing.
type Handler struct {
	db     *sql.DB
	cache  *cache.Cache
	logger logger.Logger
}

func NewHandler(db *sql.DB, c *cache.Cache, log logger.Logger) *Handler {
	return &Handler{
		db:     db,
		cache:  c,
		logger: log.WithFields(map[string]interface{}{"handler": "blog"}),
	}
}

// List handles GET /api/blog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var cached listResponse
	if h.cache.GetJSON(r.Context(), listCacheKey, &cached) {
		web.WriteJSON(w, http.StatusOK, cached)
		return
	}

	posts, err := h.listPosts(r.Context())
	if err != nil {
		h.logger.Error("blog listing query failed", map[string]interface{}{
			"error": err.Error(),
		})
		web.WriteError(w, apperrors.NewQueryExecutionError("could not load blog posts"))
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}

	resp := listResponse{Success: true, Posts: posts, Total: len(posts)}
	h.cache.SetJSON(r.Context(), listCacheKey, resp)
	web.WriteJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/blog/{slug}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/blog/")
	if slug == "" || strings.Contains(slug, "/") {
		web.WriteError(w, apperrors.NewNotFoundError("blog post not found"))
		return
	}

	key := "blog:post:" + slug
	var cached postResponse
	if h.cache.GetJSON(r.Context(), key, &cached) {
		web.WriteJSON(w, http.StatusOK, cached)
		return
	}

	post, err := h.getPost(r.Context(), slug)
	if err == sql.ErrNoRows {
		web.WriteError(w, apperrors.NewNotFoundError("blog post not found"))
		return
	}
	if err != nil {
		h.logger.Error("blog post query failed", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		web.WriteError(w, apperrors.NewQueryExecutionError("could not load the blog post"))
		return
	}

	resp := postResponse{Success: true, Post: post}
	h.cache.SetJSON(r.Context(), key, resp)
	web.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) listPosts(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT id, slug, title, excerpt, author, tags, published_at
		FROM blog_posts WHERE published_at IS NOT NULL
		ORDER BY published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Author,
			pq.Array(&p.Tags), &p.PublishedAt); err != nil {
			return nil, fmt.Errorf("scan blog row: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (h *Handler) getPost(ctx context.Context, slug string) (models.BlogPost, error) {
	var p models.BlogPost
	err := h.db.QueryRowContext(ctx, `
		SELECT id, slug, title, excerpt, content, author, tags, published_at
		FROM blog_posts WHERE slug = $1 AND published_at IS NOT NULL`, slug).
		Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.Author,
			pq.Array(&p.Tags), &p.PublishedAt)
	return p, err
}
