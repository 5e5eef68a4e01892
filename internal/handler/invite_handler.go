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

type InviteHandler struct {
	invites service.InviteService
	logger  *zap.Logger
}

func NewInviteHandler(invites service.InviteService, logger *zap.Logger) *InviteHandler {
	return &InviteHandler{invites: invites, logger: logger}
}

func (h *InviteHandler) Create(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invite, err := h.invites.Create(c.Request.Context(), yardID, req.Email, req.Name, model.EmployeeRole(req.Role))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toInviteDTO(baseURL(c), invite))
}

// Accept transitions a pending invite by token and returns the employee it
// created. A second accept of the same token conflicts rather than repeating.
func (h *InviteHandler) Accept(c *gin.Context) {
	token := c.Param("token")
	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	employee, err := h.invites.Accept(c.Request.Context(), token, req.UserID, req.ImageURL)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeDTO(baseURL(c), employee))
}

func (h *InviteHandler) Reject(c *gin.Context) {
	token := c.Param("token")
	if err := h.invites.Reject(c.Request.Context(), token); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InviteHandler) ListByYard(c *gin.Context) {
	yardID, ok := parseUUID(c, "yardId")
	if !ok {
		return
	}
	req, err := parsePage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.invites.ListByYard(c.Request.Context(), yardID, req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	base := baseURL(c)
	resp := toPagedResponse(page, func(i model.EmployeeInvite) EmployeeInviteDTO { return toInviteDTO(base, &i) })
	resp.Links = hateoas.CollectionLinks(base, "yards/"+yardID.String()+"/invites", page.PageNumber, page.PageSize, page.TotalPages)
	c.JSON(http.StatusOK, resp)
}

func (h *InviteHandler) ListAcceptedByUser(c *gin.Context) {
	userID := c.Param("userId")
	req, err := parsePage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.invites.ListAcceptedByUser(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	base := baseURL(c)
	resp := toPagedResponse(page, func(i model.EmployeeInvite) EmployeeInviteDTO { return toInviteDTO(base, &i) })
	resp.Links = hateoas.CollectionLinks(base, "invites/user/"+userID, page.PageNumber, page.PageSize, page.TotalPages)
	c.JSON(http.StatusOK, resp)
}

func (h *InviteHandler) ListPendingByEmail(c *gin.Context) {
	email := c.Param("email")
	req, err := parsePage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.invites.ListPendingByEmail(c.Request.Context(), email, req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	base := baseURL(c)
	resp := toPagedResponse(page, func(i model.EmployeeInvite) EmployeeInviteDTO { return toInviteDTO(base, &i) })
	resp.Links = hateoas.CollectionLinks(base, "invites/email/"+email, page.PageNumber, page.PageSize, page.TotalPages)
	c.JSON(http.StatusOK, resp)
}
