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

type EmployeeHandler struct {
	employees service.EmployeeService
	logger    *zap.Logger
}

func NewEmployeeHandler(employees service.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, logger: logger}
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	employeeID, ok := parseUUID(c, "employeeId")
	if !ok {
		return
	}

	employee, err := h.employees.Get(c.Request.Context(), yardID, employeeID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeDTO(baseURL(c), employee))
}

func (h *EmployeeHandler) ListByYard(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	req, err := parsePage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.employees.ListByYard(c.Request.Context(), yardID, req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	base := baseURL(c)
	resp := toPagedResponse(page, func(e model.YardEmployee) YardEmployeeDTO { return toEmployeeDTO(base, &e) })
	resp.Links = hateoas.CollectionLinks(base, "yards/"+yardID.String()+"/employees", page.PageNumber, page.PageSize, page.TotalPages)
	c.JSON(http.StatusOK, resp)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	employeeID, ok := parseUUID(c, "employeeId")
	if !ok {
		return
	}
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employees.Update(c.Request.Context(), yardID, employeeID, req.Name, req.ImageURL, model.EmployeeRole(req.Role), req.UserID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeDTO(baseURL(c), employee))
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	employeeID, ok := parseUUID(c, "employeeId")
	if !ok {
		return
	}

	if err := h.employees.Delete(c.Request.Context(), yardID, employeeID); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
