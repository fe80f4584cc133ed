package controllers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"ctc-webbase/dto"
	"ctc-webbase/internal/middleware"
	"ctc-webbase/internal/services"
)

// ListFormsHandler godoc
// @Summary      List forms of an event
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      200 {array} models.Form
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/events/{id}/forms [get]
func ListFormsHandler(forms *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		list, err := forms.ListForms(ctx, middleware.Viewer(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(list)
	}
}

// CreateFormHandler godoc
// @Summary      Create a registration form
// @Description  Community members, admins and the event creator may add forms
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Event ID"
// @Param        body body dto.CreateFormRequest true "Form definition"
// @Success      201 {object} models.Form
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/events/{id}/forms [post]
func CreateFormHandler(forms *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateFormRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		form, err := forms.CreateForm(ctx, middleware.Viewer(c), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(form)
	}
}

// GetFormHandler godoc
// @Summary      Get a form with its submissions
// @Description  Each submission carries the submitter's name and email
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id     path string true "Event ID"
// @Param        formId path string true "Form ID"
// @Success      200 {object} dto.FormDetailResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/events/{id}/forms/{formId} [get]
func GetFormHandler(forms *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		detail, err := forms.GetFormWithSubmissions(ctx, middleware.Viewer(c), c.Params("id"), c.Params("formId"))
		if err != nil {
			return err
		}
		return c.JSON(detail)
	}
}

// UpdateFormHandler godoc
// @Summary      Update a form
// @Description  Replaces title, description and/or the whole field list
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path string true "Event ID"
// @Param        formId path string true "Form ID"
// @Param        body   body dto.UpdateFormRequest true "Changes"
// @Success      200 {object} models.Form
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/events/{id}/forms/{formId} [patch]
func UpdateFormHandler(forms *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdateFormRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		form, err := forms.UpdateForm(ctx, middleware.Viewer(c), c.Params("id"), c.Params("formId"), body)
		if err != nil {
			return err
		}
		return c.JSON(form)
	}
}

// DeleteFormHandler godoc
// @Summary      Delete a form
// @Description  Removes the form and every submission made to it
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id     path string true "Event ID"
// @Param        formId path string true "Form ID"
// @Success      200 {object} map[string]string
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/events/{id}/forms/{formId} [delete]
func DeleteFormHandler(forms *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		if err := forms.DeleteForm(ctx, middleware.Viewer(c), c.Params("id"), c.Params("formId")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Form deleted successfully"})
	}
}

// ExportFormHandler godoc
// @Summary      Export submissions
// @Tags         forms
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id     path string true "Event ID"
// @Param        formId path string true "Form ID"
// @Success      200 {file} file
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/events/{id}/forms/{formId}/export [get]
func ExportFormHandler(forms *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		var buf bytes.Buffer
		name, err := forms.ExportSubmissions(ctx, middleware.Viewer(c), c.Params("id"), c.Params("formId"), &buf)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
		return c.Send(buf.Bytes())
	}
}

