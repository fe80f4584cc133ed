package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ctc-webbase/internal/middleware"
	"ctc-webbase/internal/services"
)

// StatsHandler serves referral statistics for technical leads.
type StatsHandler struct {
	stats *services.StatsService
	refs  *services.ReferralService
}

func NewStatsHandler(stats *services.StatsService, refs *services.ReferralService) *StatsHandler {
	return &StatsHandler{stats: stats, refs: refs}
}

// MyStats godoc
// @Summary      My referral stats
// @Tags         referrals
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ReferralStats
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Router       /api/technical-lead/stats [get]
func (h *StatsHandler) MyStats(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.stats.ForLead(ctx, uid)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// LeadStats godoc
// @Summary      Referral stats of a technical lead
// @Description  Admins only. id may be the lead's ObjectID or email.
// @Tags         referrals
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Technical lead ID or email"
// @Success      200 {object} dto.ReferralStats
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/technical-leads/{id}/stats [get]
func (h *StatsHandler) LeadStats(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	lead, err := h.refs.ResolveLead(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	res, err := h.stats.ForLead(ctx, lead.ID.Hex())
	if err != nil {
		return err
	}
	return c.JSON(res)
}
