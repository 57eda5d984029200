package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gpec-api/internal/application/auth"
	"github.com/jhoicas/gpec-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EmpresaUC   *usecase.EmpresaUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	PlantillaUC *usecase.PlantillaUseCase
	DocumentoUC *usecase.DocumentoUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/recover", authHandler.Recover)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresas (protegido)
	empresas := protected.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", empresaHandler.Update)
	empresas.Delete("/:id", empresaHandler.Delete)

	// Usuarios (protegido). La ruta fija /actualizar va antes que /:id para
	// que Fiber no la capture como parámetro.
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Put("/actualizar", usuarioHandler.UpdateProfile)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Patch("/:id/estado", usuarioHandler.UpdateEstado)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Plantillas (protegido)
	plantillas := protected.Group("/plantillas")
	plantillaHandler := NewPlantillaHandler(deps.PlantillaUC)
	plantillas.Post("/", plantillaHandler.Upload)
	plantillas.Get("/", plantillaHandler.List)
	plantillas.Get("/faltantes", plantillaHandler.Faltantes)
	plantillas.Post("/restaurar", plantillaHandler.Restaurar)
	plantillas.Delete("/:id", plantillaHandler.Delete)

	// Documentos (protegido)
	documentos := protected.Group("/documentos")
	documentoHandler := NewDocumentoHandler(deps.DocumentoUC)
	documentos.Get("/generar/:empresaId/:plantillaId", documentoHandler.Generar)
	documentos.Get("/historial", documentoHandler.Historial)
	documentos.Delete("/eliminar/:id", documentoHandler.Eliminar)
}
