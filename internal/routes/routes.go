package routes

import (
	"github.com/gofiber/fiber/v2"

	"ctc-webbase/internal/middleware"
	repo "ctc-webbase/internal/repository"
	"ctc-webbase/internal/services"
)

type Services struct {
	Auth        *services.AuthService
	Forms       *services.FormService
	Submissions *services.SubmissionService
	Uploads     *services.UploadService
	Referrals   *services.ReferralService
	Stats       *services.StatsService
}

// SetupAPI mounts everything under /api. Login is registered before the
// token and viewer middleware; every other route sees them.
func SetupAPI(app *fiber.App, secret string, users repo.UserRepository, svc Services) {
	api := app.Group("/api")
	SetupAuth(api, svc.Auth)

	api.Use(middleware.JWTAuth(secret))
	api.Use(middleware.InjectViewer(users))

	SetupRoutesForm(api, svc.Forms, svc.Submissions, svc.Uploads)
	SetupRoutesReferral(api, svc.Referrals, svc.Stats)
}
