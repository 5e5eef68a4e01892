package service

import "errors"

var (
	ErrYardNotFound        = errors.New("yard not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrModelNotFound       = errors.New("vehicle model not found")
	ErrEmployeeNotFound    = errors.New("yard employee not found")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrYardVehicleNotFound = errors.New("yard vehicle not found")
	ErrQRCodeNotFound      = errors.New("qr code not found")

	ErrDuplicatePendingInvite = errors.New("a pending invite already exists for this email and yard")
	ErrInviteNotPending       = errors.New("invite already accepted or rejected")

	ErrInvalidVehicleRef = errors.New("exactly one of vehicle id or vehicle payload must be provided")
	ErrInvalidModelRef   = errors.New("exactly one of model id or model payload must be provided")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidPagination = errors.New("page number and page size must be greater than zero")
)
