package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autoinsight/yardhub/internal/model"
	"autoinsight/yardhub/internal/service"
	"autoinsight/yardhub/pkg/hateoas"
	"autoinsight/yardhub/pkg/response"
)

type YardVehicleHandler struct {
	yardVehicles service.YardVehicleService
	logger       *zap.Logger
}

func NewYardVehicleHandler(yardVehicles service.YardVehicleService, logger *zap.Logger) *YardVehicleHandler {
	return &YardVehicleHandler{yardVehicles: yardVehicles, logger: logger}
}

func (h *YardVehicleHandler) Create(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	var req CreateYardVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ref, err := req.vehicleRef()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	yv, err := h.yardVehicles.Create(c.Request.Context(), yardID, service.CreateYardVehicleInput{
		Status:    model.YardVehicleStatus(req.Status),
		EnteredAt: req.EnteredAt,
		LeftAt:    req.LeftAt,
		Vehicle:   ref,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toYardVehicleDTO(baseURL(c), yv))
}

func (h *YardVehicleHandler) Get(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	yardVehicleID, ok := parseUUID(c, "yardVehicleId")
	if !ok {
		return
	}

	yv, err := h.yardVehicles.Get(c.Request.Context(), yardID, yardVehicleID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toYardVehicleDTO(baseURL(c), yv))
}

func (h *YardVehicleHandler) ListByYard(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	req, err := parsePage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.yardVehicles.ListByYard(c.Request.Context(), yardID, req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	base := baseURL(c)
	resp := toPagedResponse(page, func(yv model.YardVehicle) YardVehicleDTO { return toYardVehicleDTO(base, &yv) })
	resp.Links = hateoas.CollectionLinks(base, "yards/"+yardID.String()+"/vehicles", page.PageNumber, page.PageSize, page.TotalPages)
	c.JSON(http.StatusOK, resp)
}

func (h *YardVehicleHandler) Update(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	yardVehicleID, ok := parseUUID(c, "yardVehicleId")
	if !ok {
		return
	}
	var req UpdateYardVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	yv, err := h.yardVehicles.Update(c.Request.Context(), yardID, yardVehicleID, model.YardVehicleStatus(req.Status), req.EnteredAt, req.LeftAt)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toYardVehicleDTO(baseURL(c), yv))
}
