package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ctc-webbase/internal/middleware"
	"ctc-webbase/internal/services"
)

// ReferralLinkHandler godoc
// @Summary      Get my referral link
// @Description  Technical leads only. The link carries the lead's code and id.
// @Tags         referrals
// @Produce      json
// @Security     BearerAuth
// @Param        eventId query string true "Event ID"
// @Success      200 {object} dto.ReferralLinkResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/technical-lead/referral-link [get]
func ReferralLinkHandler(refs *services.ReferralService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := refs.Link(ctx, middleware.Viewer(c), c.Query("eventId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// ResolveReferralHandler godoc
// @Summary      Resolve a referral link
// @Description  Verifies ref and tlId from a shared link and returns the staged context with a short-lived token
// @Tags         referrals
// @Produce      json
// @Param        eventId query string true "Event ID"
// @Param        ref     query string true "Referral code"
// @Param        tlId    query string true "Technical lead ID"
// @Success      200 {object} dto.ResolveReferralResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/referrals/resolve [get]
func ResolveReferralHandler(refs *services.ReferralService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := refs.Resolve(ctx, c.Query("eventId"), c.Query("ref"), c.Query("tlId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}
