package delivery

import (
	"errors"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"portafolio/config"
	"portafolio/domain"
)

type contactoHandler struct {
	cuc domain.ContactoUseCase
	log *logrus.Logger
}

func NewContactoDelivery(app *fiber.App, uc domain.ContactoUseCase) {
	handler := &contactoHandler{
		cuc: uc,
		log: config.GetLogrusInstance(),
	}

	route := app.Group("/api/contacto")

	route.Post("/", handler.EnviarContacto)
	route.Get("/", handler.ObtenerContactos)
	route.Put("/:id", handler.ActualizarContacto)
	route.Delete("/:id", handler.EliminarContacto)
}

func (ch *contactoHandler) EnviarContacto(c *fiber.Ctx) error {
	var req domain.ContactoPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := ch.cuc.EnviarContactoUC(c.UserContext(), &req); err != nil {
		return ch.responderError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mensaje": "Contacto guardado con éxito",
	})
}

func (ch *contactoHandler) ObtenerContactos(c *fiber.Ctx) error {
	contactos, err := ch.cuc.ObtenerContactosUC(c.UserContext())
	if err != nil {
		ch.log.Errorf("error al obtener contactos: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener mensajes",
		})
	}

	return c.Status(fiber.StatusOK).JSON(contactos)
}

func (ch *contactoHandler) ActualizarContacto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Id inválido",
		})
	}

	var req domain.ContactoActualizacion
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := ch.cuc.ActualizarContactoUC(c.UserContext(), id, &req); err != nil {
		if errors.Is(err, domain.ErrFechaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		ch.log.Errorf("error al actualizar contacto %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al actualizar",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mensaje": "Actualizado correctamente",
	})
}

func (ch *contactoHandler) EliminarContacto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Id inválido",
		})
	}

	if err := ch.cuc.EliminarContactoUC(c.UserContext(), id); err != nil {
		ch.log.Errorf("error al eliminar contacto %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al eliminar",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mensaje": "Eliminado",
	})
}

// responderError traduce la falla del pipeline a una de las cuatro
// respuestas que el formulario sabe mostrar, más el caso aparte de
// verificación caída.
func (ch *contactoHandler) responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrFechaInvalida),
		errors.Is(err, domain.ErrEdadInvalida),
		errors.Is(err, domain.ErrTelefonoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, domain.ErrCaptchaRequerido):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Captcha requerido",
		})
	case errors.Is(err, domain.ErrCaptchaInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Validación de Captcha fallida",
		})
	case errors.Is(err, domain.ErrCaptchaNoDisponible):
		ch.log.Errorf("verificación de captcha no disponible: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Verificación no disponible, intenta más tarde",
		})
	default:
		ch.log.Errorf("error en contacto: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor",
		})
	}
}
