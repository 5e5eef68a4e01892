package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"autoinsight/yardhub/internal/repository"
	"autoinsight/yardhub/internal/service"
	"autoinsight/yardhub/pkg/response"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// parsePage reads pageNumber/pageSize query params, applying defaults when
// absent. Non-numeric values are rejected here; non-positive values fall
// through so the service can refuse them uniformly.
func parsePage(c *gin.Context) (repository.PageRequest, error) {
	req := repository.PageRequest{Number: defaultPageNumber, Size: defaultPageSize}

	if raw := c.Query("pageNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("pageNumber must be an integer")
		}
		req.Number = n
	}
	if raw := c.Query("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("pageSize must be an integer")
		}
		req.Size = n
	}
	return req, nil
}

func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid %s: must be a UUID", param))
		return uuid.Nil, false
	}
	return id, true
}

// baseURL reconstructs the externally visible prefix for link building.
func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

// respondServiceError translates service sentinels into HTTP responses.
// Anything unrecognized is logged and reported as a 500 without leaking
// internals to the client.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrYardNotFound),
		errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrModelNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrInviteNotFound),
		errors.Is(err, service.ErrYardVehicleNotFound),
		errors.Is(err, service.ErrQRCodeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDuplicatePendingInvite),
		errors.Is(err, service.ErrInviteNotPending):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidVehicleRef),
		errors.Is(err, service.ErrInvalidModelRef),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPagination):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.InternalError(c, "internal server error")
	}
}
