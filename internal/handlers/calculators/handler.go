// internal/handlers/calculators/handler.go
package calculators

import (
	"net/http"

	apperrors "edupath-server/internal/common/errors"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/web"
)

// Handler serves the financial-planning calculators. All three are pure
// functions behind thin decode/validate glue.
type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{
		logger: log.WithFields(map[string]interface{}{"handler": "calculators"}),
	}
}

type resultEnvelope struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result"`
}

// EMI handles POST /api/calculators/emi.
func (h *Handler) EMI(w http.ResponseWriter, r *http.Request) {
	var in EMIInput
	if err := web.DecodeJSON(r, &in); err != nil {
		web.WriteError(w, apperrors.NewInvalidPayloadError(err.Error()))
		return
	}

	result, err := CalculateEMI(in)
	if err != nil {
		web.WriteError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}
	web.WriteJSON(w, http.StatusOK, resultEnvelope{Success: true, Result: result})
}

// CGPA handles POST /api/calculators/cgpa.
func (h *Handler) CGPA(w http.ResponseWriter, r *http.Request) {
	var in CGPAInput
	if err := web.DecodeJSON(r, &in); err != nil {
		web.WriteError(w, apperrors.NewInvalidPayloadError(err.Error()))
		return
	}

	result, err := CalculateCGPA(in)
	if err != nil {
		web.WriteError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}
	web.WriteJSON(w, http.StatusOK, resultEnvelope{Success: true, Result: result})
}

// CostOfLiving handles POST /api/calculators/cost-of-living.
func (h *Handler) CostOfLiving(w http.ResponseWriter, r *http.Request) {
	var in CostOfLivingInput
	if err := web.DecodeJSON(r, &in); err != nil {
		web.WriteError(w, apperrors.NewInvalidPayloadError(err.Error()))
		return
	}

	result, err := CalculateCostOfLiving(in)
	if err != nil {
		web.WriteError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}
	web.WriteJSON(w, http.StatusOK, resultEnvelope{Success: true, Result: result})
}
