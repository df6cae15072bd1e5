// internal/handlers/admin/bulkimport/handler.go
package bulkimport

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "edupath-server/internal/common/errors"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/web"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const batchSize = 50

// Handler serves the admin bulk-import endpoint. Records are validated
// individually; valid ones are inserted in batched transactions and the
// response reports per-record outcomes.
type Handler struct {
	db     *sql.DB
	logger logger.Logger
}

func NewHandler(db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"handler": "bulkimport"}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Decode to raw messages first so schema validation sees the original
	// JSON, not Go zero values.
	var raw []json.RawMessage
	if err := web.DecodeJSON(r, &raw); err != nil {
		web.WriteError(w, apperrors.NewInvalidPayloadError("body must be a JSON array of college records"))
		return
	}
	if len(raw) == 0 {
		web.WriteError(w, apperrors.NewValidationFailedError("no records submitted"))
		return
	}

	details := h.execute(r.Context(), raw)

	h.logger.Info("bulk import finished", map[string]interface{}{
		"submitted":  len(raw),
		"successful": details.Successful,
		"failed":     details.Failed,
	})

	web.WriteJSON(w, http.StatusOK, Response{
		Success: details.Failed == 0,
		Details: details,
	})
}

func (h *Handler) execute(ctx context.Context, raw []json.RawMessage) Details {
	var details Details
	var batch []Record
	var batchIndexes []int

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := h.insertBatch(ctx, batch); err != nil {
			h.logger.Error("batch insert failed", map[string]interface{}{
				"size":  len(batch),
				"error": err.Error(),
			})
			details.Failed += len(batch)
			for _, idx := range batchIndexes {
				details.Errors = append(details.Errors, RecordError{Index: idx, Reason: "database insert failed"})
			}
		} else {
			details.Successful += len(batch)
		}
		batch = batch[:0]
		batchIndexes = batchIndexes[:0]
	}

	for i, msg := range raw {
		var generic interface{}
		if err := json.Unmarshal(msg, &generic); err != nil {
			details.Failed++
			details.Errors = append(details.Errors, RecordError{Index: i, Reason: err.Error()})
			continue
		}
		if err := validateRecord(generic); err != nil {
			details.Failed++
			details.Errors = append(details.Errors, RecordError{Index: i, Reason: err.Error()})
			continue
		}

		var rec Record
		if err := json.Unmarshal(msg, &rec); err != nil {
			details.Failed++
			details.Errors = append(details.Errors, RecordError{Index: i, Reason: err.Error()})
			continue
		}

		batch = append(batch, rec)
		batchIndexes = append(batchIndexes, i)
		if len(batch) == batchSize {
			flush()
		}
	}
	flush()

	return details
}

func (h *Handler) insertBatch(ctx context.Context, batch []Record) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO colleges (id, name, country, location, ranking, tuition, programs, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name, country) DO UPDATE
		SET location = EXCLUDED.location, ranking = EXCLUDED.ranking,
		    tuition = EXCLUDED.tuition, programs = EXCLUDED.programs, image = EXCLUDED.image`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range batch {
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), rec.Name, rec.Country,
			rec.Location, rec.Ranking, rec.Tuition, pq.Array(rec.Programs), rec.Image); err != nil {
			return fmt.Errorf("insert college %q: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}
