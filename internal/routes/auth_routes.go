package routes

import (
	"github.com/gofiber/fiber/v2"

	"ctc-webbase/internal/controllers"
	"ctc-webbase/internal/services"
)

func SetupAuth(api fiber.Router, auth *services.AuthService) {
	api.Post("/login", controllers.LoginHandler(auth))
	// curl -X POST http://127.0.0.1:8000/api/login \
	// -H "Content-Type: application/json" \
	// -d '{"email": "alice@example.com", "password": "yourpassword"}'
}
