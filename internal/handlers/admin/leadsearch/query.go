// internal/handlers/admin/leadsearch/query.go
package leadsearch

// buildLeadQuery assembles the search body: keyword relevance over the
// free-text fields, with exact filters folded into the bool filter context.
func buildLeadQuery(params *Params) map[string]interface{} {
	mustClauses := []interface{}{}
	filterClauses := []interface{}{}

	if params.Query != "" {
		mustClauses = append(mustClauses, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  params.Query,
				"fields": []string{"name^3", "email^2", "message", "field_of_study", "country_interest"},
				"type":   "best_fields",
			},
		})
	}

	if params.Priority != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"priority": params.Priority},
		})
	}
	if params.Source != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"source": params.Source},
		})
	}

	boolQuery := map[string]interface{}{}
	if len(mustClauses) > 0 {
		boolQuery["must"] = mustClauses
	}
	if len(filterClauses) > 0 {
		boolQuery["filter"] = filterClauses
	}
	if len(boolQuery) == 0 {
		return map[string]interface{}{
			"query": map[string]interface{}{"match_all": map[string]interface{}{}},
			"sort":  []interface{}{map[string]interface{}{"created_at": "desc"}},
		}
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"created_at": "desc"},
		},
	}
}
