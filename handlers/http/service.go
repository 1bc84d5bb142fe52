package httpHandler

import (
	"net/http"

	"repair-server/entities"
	"repair-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ServiceHandler struct {
	useCase *usecases.ServiceUseCase
	log     logrus.FieldLogger
}

func NewServiceHandler(useCase *usecases.ServiceUseCase, log logrus.FieldLogger) *ServiceHandler {
	return &ServiceHandler{
		useCase: useCase,
		log:     log,
	}
}

// CreateService handles POST /servicos/
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var in entities.ServiceInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}

	service, err := h.useCase.CreateService(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"service_id":    service.ID,
		"technician_id": service.TechnicianID,
	}).Info("service registered")
	c.JSON(http.StatusOK, service)
}

// AttachPart handles POST /servicos/pecas_utilizadas?servico_id=
// An unknown service is a bad request here, not a missing resource.
func (h *ServiceHandler) AttachPart(c *gin.Context) {
	serviceID := c.Query("servico_id")
	if serviceID == "" {
		respondError(c, h.log, errors.Wrap(usecases.ErrValidation, "servico_id is required"))
		return
	}

	var ref entities.PartRef
	if err := bindJSON(c, &ref); err != nil {
		respondError(c, h.log, err)
		return
	}

	service, err := h.useCase.AttachPart(c.Request.Context(), serviceID, ref)
	if err != nil {
		respondErrorStatus(c, h.log, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, service)
}

// GetService handles GET /servicos/:id
func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.useCase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// GetAllServices handles GET /servicos/?skip=&limit=
func (h *ServiceHandler) GetAllServices(c *gin.Context) {
	skip, limit := pageParams(c)
	services, err := h.useCase.GetAllServices(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetServicesByType handles GET /servicos/tipo/:tipo
func (h *ServiceHandler) GetServicesByType(c *gin.Context) {
	skip, limit := pageParams(c)
	services, err := h.useCase.GetServicesByType(c.Request.Context(), c.Param("tipo"), skip, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetServicesByTechnician handles GET /servicos/tecnico/:id
func (h *ServiceHandler) GetServicesByTechnician(c *gin.Context) {
	skip, limit := pageParams(c)
	services, err := h.useCase.GetServicesByTechnician(c.Request.Context(), c.Param("id"), skip, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// UpdateService handles PUT /servicos/:id
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, err := recordID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var update entities.ServiceUpdate
	if err := bindJSON(c, &update); err != nil {
		respondError(c, h.log, err)
		return
	}

	service, err := h.useCase.UpdateService(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService handles DELETE /servicos/:id
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.useCase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Service deleted successfully"})
}
