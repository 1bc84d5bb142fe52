package httpHandler

import (
	"net/http"

	"repair-server/entities"
	"repair-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PartHandler struct {
	useCase *usecases.PartUseCase
	log     logrus.FieldLogger
}

func NewPartHandler(useCase *usecases.PartUseCase, log logrus.FieldLogger) *PartHandler {
	return &PartHandler{
		useCase: useCase,
		log:     log,
	}
}

// CreatePart handles POST /pecas/
func (h *PartHandler) CreatePart(c *gin.Context) {
	var part entities.Part
	if err := bindJSON(c, &part); err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.useCase.CreatePart(c.Request.Context(), &part); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// GetPart handles GET /pecas/:id
func (h *PartHandler) GetPart(c *gin.Context) {
	part, err := h.useCase.GetPart(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// GetAllParts handles GET /pecas/
func (h *PartHandler) GetAllParts(c *gin.Context) {
	parts, err := h.useCase.GetAllParts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, parts)
}

// UpdatePart handles PUT /pecas/:id and PUT /pecas/?id=
func (h *PartHandler) UpdatePart(c *gin.Context) {
	id, err := recordID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var update entities.PartUpdate
	if err := bindJSON(c, &update); err != nil {
		respondError(c, h.log, err)
		return
	}

	part, err := h.useCase.UpdatePart(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// DeletePart handles DELETE /pecas/:id
func (h *PartHandler) DeletePart(c *gin.Context) {
	if err := h.useCase.DeletePart(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Part deleted successfully"})
}
