// internal/handlers/catalog/handler.go
package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"edupath-server/internal/common/cache"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/web"
	"edupath-server/internal/models"
	"edupath-server/internal/referencedata"
)

// Handler serves the public reference-data listings. The data is in-memory
// already; the cache only spares the filter work for hot query combinations.
type Handler struct {
	data   *referencedata.Provider
	cache  *cache.Cache
	logger logger.Logger
}

func NewHandler(data *referencedata.Provider, c *cache.Cache, log logger.Logger) *Handler {
	return &Handler{
		data:   data,
		cache:  c,
		logger: log.WithFields(map[string]interface{}{"handler": "catalog"}),
	}
}

type universitiesResponse struct {
	Success      bool                `json:"success"`
	Universities []models.University `json:"universities"`
	Total        int                 `json:"total"`
}

type coursesResponse struct {
	Success bool            `json:"success"`
	Courses []models.Course `json:"courses"`
	Total   int             `json:"total"`
}

type countriesResponse struct {
	Success   bool             `json:"success"`
	Countries []models.Country `json:"countries"`
	Total     int              `json:"total"`
}

// Universities handles GET /api/universities with optional country, field
// and search filters.
func (h *Handler) Universities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	country := q.Get("country")
	field := q.Get("field")
	search := strings.TrimSpace(q.Get("search"))
	limit := parseLimit(q.Get("limit"), len(h.data.Universities()))

	key := "catalog:universities:" + country + ":" + field + ":" + search + ":" + strconv.Itoa(limit)
	var cached universitiesResponse
	if h.cache.GetJSON(r.Context(), key, &cached) {
		web.WriteJSON(w, http.StatusOK, cached)
		return
	}

	var list []models.University
	if search != "" {
		list = h.data.SearchUniversities(search, limit)
	} else {
		list = h.data.FilterUniversities(country, field)
		if len(list) > limit {
			list = list[:limit]
		}
	}
	if list == nil {
		list = []models.University{}
	}

	resp := universitiesResponse{Success: true, Universities: list, Total: len(list)}
	h.cache.SetJSON(r.Context(), key, resp)
	web.WriteJSON(w, http.StatusOK, resp)
}

// Courses handles GET /api/courses with optional field, level and search
// filters.
func (h *Handler) Courses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	field := q.Get("field")
	level := q.Get("level")
	search := strings.TrimSpace(q.Get("search"))
	limit := parseLimit(q.Get("limit"), len(h.data.Courses()))

	var list []models.Course
	if search != "" {
		list = h.data.SearchCourses(search, limit)
	} else {
		for _, c := range h.data.Courses() {
			if field != "" && !strings.EqualFold(c.Field, field) {
				continue
			}
			if level != "" && !strings.EqualFold(c.Level, level) {
				continue
			}
			list = append(list, c)
			if len(list) == limit {
				break
			}
		}
	}
	if list == nil {
		list = []models.Course{}
	}

	web.WriteJSON(w, http.StatusOK, coursesResponse{Success: true, Courses: list, Total: len(list)})
}

// Countries handles GET /api/countries with an optional search filter.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	var list []models.Country
	if search != "" {
		list = h.data.SearchCountries(search, len(h.data.Countries()))
	} else {
		list = h.data.Countries()
	}
	if list == nil {
		list = []models.Country{}
	}

	web.WriteJSON(w, http.StatusOK, countriesResponse{Success: true, Countries: list, Total: len(list)})
}

func parseLimit(raw string, max int) int {
	if raw == "" {
		return max
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > max {
		return max
	}
	return n
}
