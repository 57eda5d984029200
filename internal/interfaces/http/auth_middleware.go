package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	pkgjwt "github.com/jhoicas/gpec-api/pkg/jwt"
)

const (
	localUserID = "userID"
	localCorreo = "correo"
)

// AuthMiddleware valida el JWT del header Authorization. Acepta el token
// pelado o con prefijo "Bearer " (sin distinguir mayúsculas). Deja el ID y el
// correo del usuario en los locals del contexto.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		token := raw
		// Un JWT nunca empieza con "bearer", así que el recorte es seguro.
		if len(raw) >= 6 && strings.EqualFold(raw[:6], "bearer") {
			token = strings.TrimSpace(raw[6:])
		}
		// Cubre header ausente y también "Bearer" pelado o "Bearer " sin token.
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido"})
		}

		userID, correo, err := pkgjwt.Parse(secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if userID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_CLAIM", Message: "token sin identidad"})
		}

		c.Locals(localUserID, userID)
		c.Locals(localCorreo, correo)
		return c.Next()
	}
}

// GetUserID devuelve el ID del usuario autenticado dejado por AuthMiddleware.
func GetUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localUserID).(string); ok {
		return v
	}
	return ""
}
