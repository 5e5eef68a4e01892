package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeqown/go-qrcode"
	"go.uber.org/zap"

	"autoinsight/yardhub/internal/service"
	"autoinsight/yardhub/pkg/response"
)

type VehicleHandler struct {
	vehicles service.VehicleService
	logger   *zap.Logger
}

func NewVehicleHandler(vehicles service.VehicleService, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, logger: logger}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ref, err := req.modelRef()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicles.Create(c.Request.Context(), req.Plate, req.UserID, ref)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toVehicleDTO(baseURL(c), vehicle))
}

func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "vehicleId")
	if !ok {
		return
	}
	vehicle, err := h.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleDTO(baseURL(c), vehicle))
}

// GetByQRCode resolves the vehicle a QR code is bound to. This is the lookup
// the printed code's URL points at.
func (h *VehicleHandler) GetByQRCode(c *gin.Context) {
	raw := c.Query("qrCodeId")
	if raw == "" {
		response.BadRequest(c, "qrCodeId query parameter is required")
		return
	}
	qrCodeID, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "invalid qrCodeId: must be a UUID")
		return
	}

	vehicle, err := h.vehicles.GetByQRCode(c.Request.Context(), qrCodeID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleDTO(baseURL(c), vehicle))
}

func (h *VehicleHandler) CreateQRCode(c *gin.Context) {
	var req CreateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var vehicleID *uuid.UUID
	if req.VehicleID != nil && *req.VehicleID != "" {
		id, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			response.BadRequest(c, "invalid vehicleId: must be a UUID")
			return
		}
		vehicleID = &id
	}

	code, err := h.vehicles.CreateQRCode(c.Request.Context(), vehicleID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toQRCodeDTO(baseURL(c), code))
}

func (h *VehicleHandler) GetQRCode(c *gin.Context) {
	id, ok := parseUUID(c, "qrCodeId")
	if !ok {
		return
	}
	code, err := h.vehicles.GetQRCode(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toQRCodeDTO(baseURL(c), code))
}

// RenderQRCode streams a scannable image whose payload is the vehicle lookup
// URL for this code.
func (h *VehicleHandler) RenderQRCode(c *gin.Context) {
	id, ok := parseUUID(c, "qrCodeId")
	if !ok {
		return
	}
	code, err := h.vehicles.GetQRCode(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	content := fmt.Sprintf("%s/vehicles?qrCodeId=%s", baseURL(c), code.ID)
	qrc, err := qrcode.New(content)
	if err != nil {
		h.logger.Error("encode qr code", zap.String("qr_code_id", code.ID.String()), zap.Error(err))
		response.InternalError(c, "failed to render qr code")
		return
	}

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	if err := qrc.SaveTo(c.Writer); err != nil {
		h.logger.Error("write qr code image", zap.String("qr_code_id", code.ID.String()), zap.Error(err))
	}
}
