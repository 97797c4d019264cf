package api

import (
	"net/http"

	reqdto "suppstore/internal/handler/dto/request"
	resdto "suppstore/internal/handler/dto/response"
	"suppstore/internal/handler/httperr"
	"suppstore/internal/infra"
	"suppstore/internal/pkg/errs"
	"suppstore/internal/usecase/commands"
	"suppstore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FinanceHandler struct {
	cmds commands.FinanceCommands
	q    queries.FinanceQueries
}

func NewFinanceHandler(cmds commands.FinanceCommands, q queries.FinanceQueries) *FinanceHandler {
	return &FinanceHandler{cmds: cmds, q: q}
}

// @Summary Record client payment
// @Description Record a coaching client payment; paid payments credit the coach's pending balance
// @Tags finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/finance/payments [post]
func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.RecordClientPayment(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation), errs.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Delete client payment
// @Description Delete a payment and reverse the pending credit it caused
// @Tags finance
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/finance/payments/{id} [delete]
func (h *FinanceHandler) DeletePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.DeleteClientPayment(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errs.Is(err, commands.ErrLedgerMissing), errs.Is(err, commands.ErrPendingMismatch):
			httperr.AbortWithError(c, http.StatusConflict, err, "Ledger cannot cover reversal", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set commission rate
// @Description Set a coach's commission rate for future payments
// @Tags finance
// @Accept json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Param request body reqdto.SetCommissionRateRequest true "Rate"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /admin/finance/coaches/{id}/commission-rate [put]
func (h *FinanceHandler) SetCommissionRate(c *gin.Context) {
	coachID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.SetCommissionRateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.SetCommissionRate(c.Request.Context(), coachID, *req.Rate); err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Record payout
// @Description Record a pending payout request for a coach
// @Tags finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordPayoutRequest true "Payout"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/finance/payouts [post]
func (h *FinanceHandler) RecordPayout(c *gin.Context) {
	var req reqdto.RecordPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.RecordCoachPayout(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Process payout
// @Description Complete a pending payout and settle it on the coach's ledger
// @Tags finance
// @Security BearerAuth
// @Param id path string true "Payout ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/finance/payouts/{id}/process [post]
func (h *FinanceHandler) ProcessPayout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.ProcessPayout(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrPayoutNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errs.Is(err, commands.ErrPayoutNotPending):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payout already processed", nil)
		case errs.Is(err, commands.ErrLedgerMissing), errs.Is(err, commands.ErrPendingMismatch):
			httperr.AbortWithError(c, http.StatusConflict, err, "Ledger cannot settle payout", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Coach finance dashboard
// @Description Ledger totals with payment and payout history for one coach
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Success 200 {object} resdto.CoachFinanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/finance/coaches/{id} [get]
func (h *FinanceHandler) CoachDashboard(c *gin.Context) {
	coachID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.CoachDashboard(c.Request.Context(), coachID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCoachFinanceView(view))
}
