package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/middleware"
	"ctc-webbase/internal/services"
)

// RenderFormHandler godoc
// @Summary      Render a registration form
// @Description  Returns the visible fields and initial answers. A valid referralToken fills the "referred by" field.
// @Tags         submissions
// @Produce      json
// @Param        id            path  string true  "Event ID"
// @Param        formId        path  string true  "Form ID"
// @Param        referralToken query string false "Token from /referrals/resolve"
// @Success      200 {object} formrender.Plan
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/events/{id}/forms/{formId}/render [get]
func RenderFormHandler(subs *services.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		plan, err := subs.Render(ctx, c.Params("id"), c.Params("formId"), c.Query("referralToken"))
		if err != nil {
			return err
		}
		return c.JSON(plan)
	}
}

// SubmitFormHandler godoc
// @Summary      Submit a registration
// @Description  Validates answers against the form and records the referral, if any
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path string true "Event ID"
// @Param        formId path string true "Form ID"
// @Param        body   body dto.SubmitRequest true "Answers and referral context"
// @Success      201 {object} dto.SubmitResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/events/{id}/forms/{formId}/submit [post]
func SubmitFormHandler(subs *services.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}
		var body dto.SubmitRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		sub, err := subs.Submit(ctx, uid, c.Params("id"), c.Params("formId"), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(dto.SubmitResponse{ID: sub.ID.Hex()})
	}
}

// UploadFileHandler godoc
// @Summary      Upload a file answer
// @Description  Checks the file against the field's extension and size limits, then stores it
// @Tags         submissions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id      path     string true "Event ID"
// @Param        formId  path     string true "Form ID"
// @Param        fieldId path     string true "Field ID"
// @Param        file    formData file   true "File"
// @Success      200 {object} dto.UploadResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/events/{id}/forms/{formId}/fields/{fieldId}/upload [post]
func UploadFileHandler(uploads *services.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return apperr.FieldInvalid("file", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return apperr.Internal(err)
		}
		defer f.Close()

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := uploads.Upload(ctx, uid, c.Params("id"), c.Params("formId"), c.Params("fieldId"), services.UploadFile{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Body:        f,
		})
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}
