package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"autoinsight/yardhub/internal/model"
	"autoinsight/yardhub/internal/repository"
	"autoinsight/yardhub/internal/service"
	"autoinsight/yardhub/pkg/hateoas"
)

// Request bodies. Field-level validation happens through binding tags; the
// link-or-create exclusivity rules live in the vehicleRef/modelRef converters
// so the service layer only ever sees a well-formed sum type.

type AddressRequest struct {
	Country      string  `json:"country" binding:"required"`
	State        string  `json:"state" binding:"required"`
	City         string  `json:"city" binding:"required"`
	ZipCode      string  `json:"zipCode" binding:"required"`
	Neighborhood string  `json:"neighborhood" binding:"required"`
	Complement   *string `json:"complement,omitempty"`
}

func (r AddressRequest) toModel() model.Address {
	return model.Address{
		Country:      r.Country,
		State:        r.State,
		City:         r.City,
		ZipCode:      r.ZipCode,
		Neighborhood: r.Neighborhood,
		Complement:   r.Complement,
	}
}

type CreateYardRequest struct {
	OwnerID string         `json:"ownerId" binding:"required"`
	Address AddressRequest `json:"address" binding:"required"`
}

type UpdateYardRequest struct {
	OwnerID string         `json:"ownerId" binding:"required"`
	Address AddressRequest `json:"address" binding:"required"`
}

type CreateInviteRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=ADMIN MEMBER"`
}

type AcceptInviteRequest struct {
	UserID   string  `json:"userId" binding:"required"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type UpdateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Role     string  `json:"role" binding:"required,oneof=ADMIN MEMBER"`
	UserID   string  `json:"userId" binding:"required"`
}

type CreateModelRequest struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year" binding:"required,gt=1900"`
}

type CreateVehicleRequest struct {
	Plate   string              `json:"plate" binding:"required"`
	UserID  string              `json:"userId" binding:"required"`
	ModelID *string             `json:"modelId,omitempty"`
	Model   *CreateModelRequest `json:"model,omitempty"`
}

var (
	errVehicleRefChoice = errors.New("exactly one of vehicleId or vehicle must be provided")
	errModelRefChoice   = errors.New("exactly one of modelId or model must be provided")
)

func (r CreateVehicleRequest) modelRef() (service.ModelRef, error) {
	hasID := r.ModelID != nil && *r.ModelID != ""
	hasInline := r.Model != nil
	if hasID == hasInline {
		return nil, errModelRefChoice
	}
	if hasID {
		id, err := uuid.Parse(*r.ModelID)
		if err != nil {
			return nil, fmt.Errorf("invalid modelId: %w", err)
		}
		return service.ExistingModel{ID: id}, nil
	}
	return service.NewModel{Name: r.Model.Name, Year: r.Model.Year}, nil
}

type CreateYardVehicleRequest struct {
	Status    string                `json:"status" binding:"required,oneof=SCHEDULED WAITING ON_SERVICE FINISHED CANCELLED"`
	EnteredAt *time.Time            `json:"enteredAt,omitempty"`
	LeftAt    *time.Time            `json:"leftAt,omitempty"`
	VehicleID *string               `json:"vehicleId,omitempty"`
	Vehicle   *CreateVehicleRequest `json:"vehicle,omitempty"`
}

func (r CreateYardVehicleRequest) vehicleRef() (service.VehicleRef, error) {
	hasID := r.VehicleID != nil && *r.VehicleID != ""
	hasInline := r.Vehicle != nil
	if hasID == hasInline {
		return nil, errVehicleRefChoice
	}
	if hasID {
		id, err := uuid.Parse(*r.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("invalid vehicleId: %w", err)
		}
		return service.ExistingVehicle{ID: id}, nil
	}
	mref, err := r.Vehicle.modelRef()
	if err != nil {
		return nil, err
	}
	return service.NewVehicle{Plate: r.Vehicle.Plate, UserID: r.Vehicle.UserID, Model: mref}, nil
}

type UpdateYardVehicleRequest struct {
	Status    string     `json:"status" binding:"required,oneof=SCHEDULED WAITING ON_SERVICE FINISHED CANCELLED"`
	EnteredAt *time.Time `json:"enteredAt,omitempty"`
	LeftAt    *time.Time `json:"leftAt,omitempty"`
}

type CreateQRCodeRequest struct {
	VehicleID *string `json:"vehicleId,omitempty"`
}

// Response bodies.

type AddressDTO struct {
	Country      string  `json:"country"`
	State        string  `json:"state"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zipCode"`
	Neighborhood string  `json:"neighborhood"`
	Complement   *string `json:"complement,omitempty"`
}

type YardDTO struct {
	ID      string         `json:"id"`
	OwnerID string         `json:"ownerId"`
	Address AddressDTO     `json:"address"`
	Links   []hateoas.Link `json:"links,omitempty"`
}

type ModelDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
}

type VehicleDTO struct {
	ID     string         `json:"id"`
	Plate  string         `json:"plate"`
	Model  ModelDTO       `json:"model"`
	UserID string         `json:"userId"`
	Links  []hateoas.Link `json:"links,omitempty"`
}

type YardVehicleDTO struct {
	ID        string         `json:"id"`
	Status    string         `json:"status"`
	EnteredAt *time.Time     `json:"enteredAt"`
	LeftAt    *time.Time     `json:"leftAt"`
	Vehicle   VehicleDTO     `json:"vehicle"`
	Links     []hateoas.Link `json:"links,omitempty"`
}

type YardEmployeeDTO struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	ImageURL *string        `json:"imageUrl,omitempty"`
	Role     string         `json:"role"`
	UserID   string         `json:"userId"`
	Links    []hateoas.Link `json:"links,omitempty"`
}

type EmployeeInviteDTO struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Name             string         `json:"name"`
	Role             string         `json:"role"`
	Status           string         `json:"status"`
	Token            string         `json:"token"`
	CreatedAt        time.Time      `json:"createdAt"`
	AcceptedAt       *time.Time     `json:"acceptedAt,omitempty"`
	AcceptedByUserID *string        `json:"acceptedByUserId,omitempty"`
	YardID           string         `json:"yardId"`
	Links            []hateoas.Link `json:"links,omitempty"`
}

type QRCodeDTO struct {
	ID      string         `json:"id"`
	Vehicle *VehicleDTO    `json:"vehicle,omitempty"`
	Links   []hateoas.Link `json:"links,omitempty"`
}

type PagedResponse[T any] struct {
	PageNumber   int            `json:"pageNumber"`
	PageSize     int            `json:"pageSize"`
	TotalPages   int            `json:"totalPages"`
	TotalRecords int64          `json:"totalRecords"`
	Data         []T            `json:"data"`
	Links        []hateoas.Link `json:"links,omitempty"`
}

func toPagedResponse[T, D any](page repository.Page[T], mapFn func(T) D) PagedResponse[D] {
	data := make([]D, 0, len(page.Data))
	for _, item := range page.Data {
		data = append(data, mapFn(item))
	}
	return PagedResponse[D]{
		PageNumber:   page.PageNumber,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		TotalRecords: page.TotalRecords,
		Data:         data,
	}
}

func toAddressDTO(a model.Address) AddressDTO {
	return AddressDTO{
		Country:      a.Country,
		State:        a.State,
		City:         a.City,
		ZipCode:      a.ZipCode,
		Neighborhood: a.Neighborhood,
		Complement:   a.Complement,
	}
}

func toYardDTO(baseURL string, y *model.Yard) YardDTO {
	return YardDTO{
		ID:      y.ID.String(),
		OwnerID: y.OwnerID,
		Address: toAddressDTO(y.Address),
		Links:   hateoas.ResourceLinks(baseURL, "yards", y.ID.String()),
	}
}

func toModelDTO(m model.VehicleModel) ModelDTO {
	return ModelDTO{ID: m.ID.String(), Name: m.Name, Year: m.Year}
}

func toVehicleDTO(baseURL string, v *model.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:     v.ID.String(),
		Plate:  v.Plate,
		Model:  toModelDTO(v.Model),
		UserID: v.UserID,
		Links:  hateoas.ResourceLinks(baseURL, "vehicles", v.ID.String()),
	}
}

func toYardVehicleDTO(baseURL string, yv *model.YardVehicle) YardVehicleDTO {
	return YardVehicleDTO{
		ID:        yv.ID.String(),
		Status:    string(yv.Status),
		EnteredAt: yv.EnteredAt,
		LeftAt:    yv.LeftAt,
		Vehicle:   toVehicleDTO(baseURL, &yv.Vehicle),
		Links:     hateoas.ResourceLinks(baseURL, fmt.Sprintf("yards/%s/vehicles", yv.YardID), yv.ID.String()),
	}
}

func toEmployeeDTO(baseURL string, e *model.YardEmployee) YardEmployeeDTO {
	return YardEmployeeDTO{
		ID:       e.ID.String(),
		Name:     e.Name,
		ImageURL: e.ImageURL,
		Role:     string(e.Role),
		UserID:   e.UserID,
		Links:    hateoas.ResourceLinks(baseURL, fmt.Sprintf("yards/%s/employees", e.YardID), e.ID.String()),
	}
}

func toInviteDTO(baseURL string, i *model.EmployeeInvite) EmployeeInviteDTO {
	return EmployeeInviteDTO{
		ID:               i.ID.String(),
		Email:            i.Email,
		Name:             i.Name,
		Role:             string(i.Role),
		Status:           string(i.Status),
		Token:            i.Token,
		CreatedAt:        i.CreatedAt,
		AcceptedAt:       i.AcceptedAt,
		AcceptedByUserID: i.AcceptedByUserID,
		YardID:           i.YardID.String(),
		Links:            hateoas.ResourceLinks(baseURL, fmt.Sprintf("yards/%s/invites", i.YardID), i.ID.String()),
	}
}

func toQRCodeDTO(baseURL string, q *model.QRCode) QRCodeDTO {
	dto := QRCodeDTO{
		ID:    q.ID.String(),
		Links: hateoas.ResourceLinks(baseURL, "qrcodes", q.ID.String()),
	}
	if q.Vehicle != nil {
		v := toVehicleDTO(baseURL, q.Vehicle)
		dto.Vehicle = &v
	}
	return dto
}
