package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ctc-webbase/dto"
	"ctc-webbase/internal/services"
)

// LoginHandler godoc
// @Summary      Log in
// @Description  Exchange email and password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.LoginResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /api/login [post]
func LoginHandler(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		res, err := auth.Login(ctx, body)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}
