package routes

import (
	"github.com/gofiber/fiber/v2"

	"ctc-webbase/internal/controllers"
	"ctc-webbase/internal/middleware"
	"ctc-webbase/internal/models"
	"ctc-webbase/internal/services"
)

func SetupRoutesReferral(api fiber.Router, refs *services.ReferralService, stats *services.StatsService) {
	h := controllers.NewStatsHandler(stats, refs)

	// Public: turns ?ref=&tlId= from a shared link into a referral token
	api.Get("/referrals/resolve", controllers.ResolveReferralHandler(refs))

	// Group middleware would also match /technical-leads, so guard per route
	lead := middleware.RequireRole(models.RoleTechnicalLead)
	api.Get("/technical-lead/referral-link", lead, controllers.ReferralLinkHandler(refs))
	api.Get("/technical-lead/stats", lead, h.MyStats)

	api.Get("/technical-leads/:id/stats", middleware.RequireRole(models.RoleAdmin), h.LeadStats)
}
