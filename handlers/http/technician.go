package httpHandler

import (
	"net/http"

	"repair-server/entities"
	"repair-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TechnicianHandler struct {
	useCase *usecases.TechnicianUseCase
	log     logrus.FieldLogger
}

func NewTechnicianHandler(useCase *usecases.TechnicianUseCase, log logrus.FieldLogger) *TechnicianHandler {
	return &TechnicianHandler{
		useCase: useCase,
		log:     log,
	}
}

// CreateTechnician handles POST /tecnicos/
func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var technician entities.Technician
	if err := bindJSON(c, &technician); err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.useCase.CreateTechnician(c.Request.Context(), &technician); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, technician)
}

// GetTechnician handles GET /tecnicos/:id
func (h *TechnicianHandler) GetTechnician(c *gin.Context) {
	technician, err := h.useCase.GetTechnician(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, technician)
}

// GetAllTechnicians handles GET /tecnicos/
func (h *TechnicianHandler) GetAllTechnicians(c *gin.Context) {
	technicians, err := h.useCase.GetAllTechnicians(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, technicians)
}

// UpdateTechnician handles PUT /tecnicos/:id and PUT /tecnicos/?id=
func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	id, err := recordID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var update entities.TechnicianUpdate
	if err := bindJSON(c, &update); err != nil {
		respondError(c, h.log, err)
		return
	}

	technician, err := h.useCase.UpdateTechnician(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, technician)
}

// DeleteTechnician handles DELETE /tecnicos/:id
func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	if err := h.useCase.DeleteTechnician(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Technician deleted successfully"})
}
