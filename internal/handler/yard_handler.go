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

type YardHandler struct {
	yards  service.YardService
	logger *zap.Logger
}

func NewYardHandler(yards service.YardService, logger *zap.Logger) *YardHandler {
	return &YardHandler{yards: yards, logger: logger}
}

func (h *YardHandler) Create(c *gin.Context) {
	var req CreateYardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	yard, err := h.yards.Create(c.Request.Context(), req.OwnerID, req.Address.toModel())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toYardDTO(baseURL(c), yard))
}

func (h *YardHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	yard, err := h.yards.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toYardDTO(baseURL(c), yard))
}

func (h *YardHandler) List(c *gin.Context) {
	req, err := parsePage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.yards.List(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	base := baseURL(c)
	resp := toPagedResponse(page, func(y model.Yard) YardDTO { return toYardDTO(base, &y) })
	resp.Links = hateoas.CollectionLinks(base, "yards", page.PageNumber, page.PageSize, page.TotalPages)
	c.JSON(http.StatusOK, resp)
}

func (h *YardHandler) Update(c *gin.Context) {
	id, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	var req UpdateYardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	yard, err := h.yards.Update(c.Request.Context(), id, req.OwnerID, req.Address.toModel())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toYardDTO(baseURL(c), yard))
}

func (h *YardHandler) Delete(c *gin.Context) {
	id, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	if err := h.yards.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
