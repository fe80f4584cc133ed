package routes

import (
	"github.com/gofiber/fiber/v2"

	"ctc-webbase/internal/controllers"
	"ctc-webbase/internal/middleware"
	"ctc-webbase/internal/services"
)

func SetupRoutesForm(api fiber.Router, forms *services.FormService, subs *services.SubmissionService, uploads *services.UploadService) {
	auth := middleware.RequireAuth()
	form := api.Group("/events/:id/forms")

	// Form management
	form.Get("/", auth, controllers.ListFormsHandler(forms))
	form.Post("/", auth, controllers.CreateFormHandler(forms))
	form.Get("/:formId", auth, controllers.GetFormHandler(forms))
	form.Patch("/:formId", auth, controllers.UpdateFormHandler(forms))
	form.Delete("/:formId", auth, controllers.DeleteFormHandler(forms))
	form.Get("/:formId/export", auth, controllers.ExportFormHandler(forms))

	// Filling a form; rendering works without login
	form.Get("/:formId/render", controllers.RenderFormHandler(subs))
	form.Post("/:formId/submit", auth, controllers.SubmitFormHandler(subs))
	form.Post("/:formId/fields/:fieldId/upload", auth, controllers.UploadFileHandler(uploads))
}
