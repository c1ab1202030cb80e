package handlers

import (
	"fmt"

	"apicatalogo/internal/dtos"
	"apicatalogo/internal/services"
	"apicatalogo/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CategoriaHandler handles HTTP requests for categorias.
type CategoriaHandler struct {
	service  *services.CategoriaService
	validate *validation.Validator
	log      *zap.Logger
}

// NewCategoriaHandler creates a new CategoriaHandler.
func NewCategoriaHandler(service *services.CategoriaService, validate *validation.Validator, log *zap.Logger) *CategoriaHandler {
	return &CategoriaHandler{
		service:  service,
		validate: validate,
		log:      log,
	}
}

// RegisterRoutes registers the categoria routes. guards run before every
// route that changes data.
func (h *CategoriaHandler) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	categoriaRoutes := router.Group("/categorias")
	categoriaRoutes.Get("/", h.HandleGetCategorias)
	categoriaRoutes.Get("/:id<int>", h.HandleGetCategoriaByID)
	categoriaRoutes.Post("/", withGuards(guards, h.HandleCreateCategoria)...)
	categoriaRoutes.Put("/:id<int>", withGuards(guards, h.HandleUpdateCategoria)...)
	categoriaRoutes.Delete("/:id<int>", withGuards(guards, h.HandleDeleteCategoria)...)
}

// HandleGetCategorias lists every categoria; none is an empty list.
func (h *CategoriaHandler) HandleGetCategorias(c *fiber.Ctx) error {
	categorias, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categorias)
}

func (h *CategoriaHandler) HandleGetCategoriaByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidData(c, err)
	}

	categoria, err := h.service.Get(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, h.log, err, fmt.Sprintf("Categoria com id %d não encontrada...", id))
	}
	return c.JSON(categoria)
}

// HandleCreateCategoria creates a categoria and points Location at it.
func (h *CategoriaHandler) HandleCreateCategoria(c *fiber.Ctx) error {
	var dto *dtos.CategoriaDTO
	if err := c.BodyParser(&dto); err != nil || dto == nil {
		h.log.Warn(invalidDataMessage, zap.Error(err))
		return invalidData(c, err)
	}
	if err := h.validate.Struct(dto); err != nil {
		return respondError(c, h.log, err, "")
	}

	criada, err := h.service.Create(c.UserContext(), dto)
	if err != nil {
		return respondError(c, h.log, err, "")
	}

	c.Location(fmt.Sprintf("/categorias/%d", criada.CategoriaID))
	return c.Status(fiber.StatusCreated).JSON(criada)
}

func (h *CategoriaHandler) HandleUpdateCategoria(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidData(c, err)
	}

	var dto *dtos.CategoriaDTO
	if err := c.BodyParser(&dto); err != nil || dto == nil {
		return invalidData(c, err)
	}
	if err := h.validate.Struct(dto); err != nil {
		return respondError(c, h.log, err, "")
	}

	atualizada, err := h.service.Update(c.UserContext(), uint(id), dto)
	if err != nil {
		return respondError(c, h.log, err, fmt.Sprintf("Categoria com id %d não localizada...", id))
	}
	return c.JSON(atualizada)
}

// HandleDeleteCategoria removes a categoria and echoes it back.
func (h *CategoriaHandler) HandleDeleteCategoria(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidData(c, err)
	}

	excluida, err := h.service.Delete(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, h.log, err, fmt.Sprintf("Categoria com id %d não localizada...", id))
	}
	return c.JSON(excluida)
}
