package httpHandler

import (
	"net/http"

	"repair-server/entities"
	"repair-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DeviceHandler struct {
	useCase *usecases.DeviceUseCase
	log     logrus.FieldLogger
}

func NewDeviceHandler(useCase *usecases.DeviceUseCase, log logrus.FieldLogger) *DeviceHandler {
	return &DeviceHandler{
		useCase: useCase,
		log:     log,
	}
}

// CreateDevice handles POST /dispositivos/
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var device entities.Device
	if err := bindJSON(c, &device); err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.useCase.CreateDevice(c.Request.Context(), &device); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

// GetDevice handles GET /dispositivos/:id
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	device, err := h.useCase.GetDevice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

// GetAllDevices handles GET /dispositivos/
func (h *DeviceHandler) GetAllDevices(c *gin.Context) {
	devices, err := h.useCase.GetAllDevices(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, devices)
}

// UpdateDevice handles PUT /dispositivos/:id and PUT /dispositivos/?id=
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	id, err := recordID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var update entities.DeviceUpdate
	if err := bindJSON(c, &update); err != nil {
		respondError(c, h.log, err)
		return
	}

	device, err := h.useCase.UpdateDevice(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

// DeleteDevice handles DELETE /dispositivos/:id
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	if err := h.useCase.DeleteDevice(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Device deleted successfully"})
}
