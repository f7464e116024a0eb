package delivery

import (
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"portafolio/config"
	"portafolio/domain"
)

type visitanteHandler struct {
	vuc domain.VisitanteUseCase
	log *logrus.Logger
}

func NewVisitanteDelivery(app *fiber.App, uc domain.VisitanteUseCase) {
	handler := &visitanteHandler{
		vuc: uc,
		log: config.GetLogrusInstance(),
	}

	route := app.Group("/api/visitantes")

	route.Get("/", handler.ObtenerVisitantes)
	route.Post("/", handler.RegistrarVisitante)
}

func (vh *visitanteHandler) ObtenerVisitantes(c *fiber.Ctx) error {
	visitantes, err := vh.vuc.ObtenerUltimosVisitantesUC(c.UserContext())
	if err != nil {
		vh.log.Errorf("error al obtener visitantes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al consultar visitantes",
		})
	}

	return c.Status(fiber.StatusOK).JSON(visitantes)
}

func (vh *visitanteHandler) RegistrarVisitante(c *fiber.Ctx) error {
	var req domain.VisitantePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El nombre es obligatorio",
		})
	}

	if err := vh.vuc.RegistrarVisitanteUC(c.UserContext(), req.Nombre); err != nil {
		vh.log.Errorf("error al registrar visitante: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error en la base de datos",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mensaje": "Visitante guardado",
	})
}
