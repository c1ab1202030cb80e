package handlers

import (
	"fmt"

	"apicatalogo/internal/dtos"
	"apicatalogo/internal/patch"
	"apicatalogo/internal/services"
	"apicatalogo/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProdutoHandler handles HTTP requests for produtos.
type ProdutoHandler struct {
	service  *services.ProdutoService
	validate *validation.Validator
	log      *zap.Logger
}

// NewProdutoHandler creates a new ProdutoHandler.
func NewProdutoHandler(service *services.ProdutoService, validate *validation.Validator, log *zap.Logger) *ProdutoHandler {
	return &ProdutoHandler{
		service:  service,
		validate: validate,
		log:      log,
	}
}

// RegisterRoutes registers the produto routes. guards run before every
// route that changes data.
func (h *ProdutoHandler) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	produtoRoutes := router.Group("/produtos")
	produtoRoutes.Get("/", h.HandleGetProdutos)
	produtoRoutes.Get("/produtos/:categoriaId<int>", h.HandleGetProdutosCategoria)
	produtoRoutes.Get("/:id<int>", h.HandleGetProdutoByID)
	produtoRoutes.Post("/", withGuards(guards, h.HandleCreateProduto)...)
	produtoRoutes.Patch("/:id/UpdatePartial", withGuards(guards, h.HandlePatchProduto)...)
	produtoRoutes.Put("/:id<int>", withGuards(guards, h.HandleUpdateProduto)...)
	produtoRoutes.Delete("/:id<int>", withGuards(guards, h.HandleDeleteProduto)...)
}

func (h *ProdutoHandler) HandleGetProdutos(c *fiber.Ctx) error {
	produtos, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(produtos)
}

// HandleGetProdutosCategoria lists the produtos of a categoria. A categoria
// without produtos answers 200 with an empty list.
func (h *ProdutoHandler) HandleGetProdutosCategoria(c *fiber.Ctx) error {
	categoriaID, err := c.ParamsInt("categoriaId")
	if err != nil {
		return invalidData(c, err)
	}

	produtos, err := h.service.ListByCategoria(c.UserContext(), uint(categoriaID))
	if err != nil {
		return err
	}
	return c.JSON(produtos)
}

// HandleGetProdutoByID answers 404 for ids below 1, which no produto can have.
func (h *ProdutoHandler) HandleGetProdutoByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidData(c, err)
	}
	if id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Produto com id %d não encontrado...", id),
		})
	}

	produto, err := h.service.Get(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, h.log, err, fmt.Sprintf("Produto com id %d não encontrado...", id))
	}
	return c.JSON(produto)
}

func (h *ProdutoHandler) HandleCreateProduto(c *fiber.Ctx) error {
	var dto *dtos.ProdutoDTO
	if err := c.BodyParser(&dto); err != nil || dto == nil {
		h.log.Warn(invalidDataMessage, zap.Error(err))
		return invalidData(c, err)
	}
	if err := h.validate.Struct(dto); err != nil {
		return respondError(c, h.log, err, "")
	}

	novo, err := h.service.Create(c.UserContext(), dto)
	if err != nil {
		return respondError(c, h.log, err, "")
	}

	c.Location(fmt.Sprintf("/produtos/%d", novo.ProdutoID))
	return c.Status(fiber.StatusCreated).JSON(novo)
}

// HandlePatchProduto applies a JSON Patch document, e.g.
//
//	[{"op": "replace", "path": "/nome", "value": "Produto alterado"}]
func (h *ProdutoHandler) HandlePatchProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return invalidData(c, err)
	}

	doc, err := patch.Decode(c.Body())
	if err != nil {
		return respondError(c, h.log, err, "")
	}

	atualizado, err := h.service.Patch(c.UserContext(), id, doc)
	if err != nil {
		return respondError(c, h.log, err, fmt.Sprintf("Produto com id %d não encontrado...", id))
	}
	return c.JSON(atualizado)
}

func (h *ProdutoHandler) HandleUpdateProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidData(c, err)
	}

	var dto *dtos.ProdutoDTO
	if err := c.BodyParser(&dto); err != nil || dto == nil {
		return invalidData(c, err)
	}
	if dto.ProdutoID != uint(id) {
		msg := fmt.Sprintf("Produto com id = %d não localizado ...", id)
		h.log.Warn(msg)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}
	if err := h.validate.Struct(dto); err != nil {
		return respondError(c, h.log, err, "")
	}

	atualizado, err := h.service.Update(c.UserContext(), uint(id), dto)
	if err != nil {
		return respondError(c, h.log, err, fmt.Sprintf("Produto com id = %d não localizado ...", id))
	}
	return c.JSON(atualizado)
}

func (h *ProdutoHandler) HandleDeleteProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidData(c, err)
	}

	excluido, err := h.service.Delete(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, h.log, err, fmt.Sprintf("Produto com id = %d não localizado ...", id))
	}
	return c.JSON(excluido)
}
