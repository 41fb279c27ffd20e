package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rasoighar/backend/internal/middleware"
	"github.com/rasoighar/backend/internal/model"
	"github.com/rasoighar/backend/internal/service"
)

type IoTHandler struct {
	iotService *service.IoTService
}

func NewIoTHandler(iotService *service.IoTService) *IoTHandler {
	return &IoTHandler{iotService: iotService}
}

func (h *IoTHandler) RegisterRoutes(router *gin.RouterGroup) {
	iot := router.Group("/iot")
	{
		iot.POST("/devices", h.RegisterDevice)
		iot.POST("/devices/token", h.IssueToken)
		iot.POST("/sensor", middleware.DeviceAuth(h.iotService), h.SubmitReading)
		iot.GET("/latest", h.LatestReadings)
	}
}

type registerDeviceRequest struct {
	DeviceID string `json:"deviceId" binding:"required"`
	Name     string `json:"name"`
	Secret   string `json:"secret" binding:"required"`
}

func (h *IoTHandler) RegisterDevice(c *gin.Context) {
	var req registerDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	device, err := h.iotService.RegisterDevice(c.Request.Context(), req.DeviceID, req.Name, req.Secret)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}

type tokenRequest struct {
	DeviceID string `json:"deviceId" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

func (h *IoTHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.iotService.IssueToken(c.Request.Context(), req.DeviceID, req.Secret)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type sensorReadingRequest struct {
	DeviceID string  `json:"deviceId" binding:"required"`
	Gas      float64 `json:"gas"`
	Weight   float64 `json:"weight"`
	Fire     bool    `json:"fire"`
}

func (h *IoTHandler) SubmitReading(c *gin.Context) {
	var req sensorReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading := model.SensorReading{
		DeviceID: req.DeviceID,
		Gas:      req.Gas,
		Weight:   req.Weight,
		Fire:     req.Fire,
	}
	saved, err := h.iotService.RecordReading(c.Request.Context(), &reading)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"success": true, "message": "Sensor data saved"}
	if saved.Alert != "" {
		response["alert"] = saved.Alert
	}
	c.JSON(http.StatusOK, response)
}

func (h *IoTHandler) LatestReadings(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}
	readings, err := h.iotService.LatestReadings(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}
