package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vitrina/internal/delivery/http/response"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business-record handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{uc: uc, logger: logger}
}

type createBusinessRequest struct {
	Name    string `json:"name" validate:"required"`
	TaxID   int64  `json:"taxId" validate:"required,gt=0"`
	Address string `json:"address"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
}

// Create registers a new business record. Admin only.
func (h *BusinessHandler) Create(c echo.Context) error {
	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.CreateBusiness(c.Request().Context(), usecase.CreateBusinessInput{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// List returns every business.
func (h *BusinessHandler) List(c echo.Context) error {
	businesses, err := h.uc.ListBusinesses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// ListByTaxID returns every business ordered by taxId ascending.
func (h *BusinessHandler) ListByTaxID(c echo.Context) error {
	businesses, err := h.uc.ListBusinessesByTaxID(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Get returns a single business by ID.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business id")
	}

	business, err := h.uc.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// GetByTaxID returns a single business by its numeric fiscal identifier.
func (h *BusinessHandler) GetByTaxID(c echo.Context) error {
	taxID, err := strconv.ParseInt(c.Param("taxId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tax id")
	}

	business, err := h.uc.GetBusinessByTaxID(c.Request().Context(), taxID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

type updateBusinessRequest struct {
	Name    *string `json:"name"`
	TaxID   *int64  `json:"taxId" validate:"omitempty,gt=0"`
	Address *string `json:"address"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
}

// Update applies a partial business update. Admin only.
func (h *BusinessHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business id")
	}

	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.UpdateBusiness(c.Request().Context(), id, usecase.UpdateBusinessInput{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// UpdateByTaxID applies a partial update addressed by fiscal identifier. Admin only.
func (h *BusinessHandler) UpdateByTaxID(c echo.Context) error {
	taxID, err := strconv.ParseInt(c.Param("taxId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tax id")
	}

	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.UpdateBusinessByTaxID(c.Request().Context(), taxID, usecase.UpdateBusinessInput{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// DeleteByTaxID removes a business record addressed by fiscal identifier. Admin only.
func (h *BusinessHandler) DeleteByTaxID(c echo.Context) error {
	taxID, err := strconv.ParseInt(c.Param("taxId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tax id")
	}

	if err := h.uc.DeleteBusinessByTaxID(c.Request().Context(), taxID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}

// Delete removes a business record. Admin only.
func (h *BusinessHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business id")
	}

	if err := h.uc.DeleteBusiness(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}
