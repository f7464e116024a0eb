package delivery

import (
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"portafolio/config"
	"portafolio/domain"
)

type imagenHandler struct {
	iuc domain.ImagenUseCase
	log *logrus.Logger
}

func NewImagenDelivery(app *fiber.App, uc domain.ImagenUseCase) {
	handler := &imagenHandler{
		iuc: uc,
		log: config.GetLogrusInstance(),
	}

	route := app.Group("/api/imagenes")

	route.Get("/", handler.ObtenerImagenes)
	route.Post("/", handler.VincularImagen)
	route.Delete("/", handler.EliminarImagen)
}

func (ih *imagenHandler) ObtenerImagenes(c *fiber.Ctx) error {
	imagenes, err := ih.iuc.ObtenerImagenesUC(c.UserContext())
	if err != nil {
		ih.log.Errorf("error al obtener imagenes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al consultar imágenes",
		})
	}

	return c.Status(fiber.StatusOK).JSON(imagenes)
}

func (ih *imagenHandler) VincularImagen(c *fiber.Ctx) error {
	var req domain.ImagenPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El public_id es obligatorio",
		})
	}

	if err := ih.iuc.VincularImagenUC(c.UserContext(), req.PublicID); err != nil {
		ih.log.Errorf("error al vincular imagen: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al insertar imagen",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mensaje": "Imagen vinculada correctamente",
	})
}

// EliminarImagen recibe el public_id por query string igual que el widget
// del cliente.
func (ih *imagenHandler) EliminarImagen(c *fiber.Ctx) error {
	publicID := c.Query("public_id")
	if publicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Falta public_id",
		})
	}

	if err := ih.iuc.EliminarImagenUC(c.UserContext(), publicID); err != nil {
		ih.log.Errorf("error al eliminar imagen %s: %v", publicID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al eliminar imagen",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mensaje": "Imagen eliminada",
	})
}
