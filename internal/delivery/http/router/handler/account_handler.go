// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

// accountResponse is the public shape of an account. The password hash never
// leaves the service.
type accountResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Age          int       `json:"age"`
	City         string    `json:"city"`
	Interests    []string  `json:"interests"`
	AllowsOffers bool      `json:"allowsOffers"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:           account.ID,
		Name:         account.Name,
		Email:        account.Email,
		Age:          account.Age,
		City:         account.City,
		Interests:    account.Interests,
		AllowsOffers: account.AllowsOffers,
		Role:         account.Role.String(),
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}

func toAccountResponses(accounts []*entity.Account) []accountResponse {
	out := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}

	return out
}

type registerAccountRequest struct {
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6"`
	Age          int      `json:"age" validate:"gte=0"`
	City         string   `json:"city"`
	Interests    []string `json:"interests"`
	AllowsOffers bool     `json:"allowsOffers"`
	Role         string   `json:"role"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.Register(c.Request().Context(), usecase.RegisterAccountInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Age:          req.Age,
		City:         req.City,
		Interests:    req.Interests,
		AllowsOffers: req.AllowsOffers,
		Role:         entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account), "Account registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

// Login handles the login request and returns a bearer token.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		Token:   out.Token,
		Account: toAccountResponse(out.Account),
	}, "Login successful")
}

// List returns every account.
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponses(accounts), "")
}

// Get returns a single account by ID.
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "")
}

// OffersAudience returns accounts in a city that opted in to local offers.
func (h *AccountHandler) OffersAudience(c echo.Context) error {
	city := c.Param("city")
	if city == "" {
		return response.BadRequest(c, "INVALID_INPUT", "City is required")
	}

	accounts, err := h.uc.ListOffersAudience(c.Request().Context(), city)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponses(accounts), "")
}

type updateAccountRequest struct {
	Name         *string   `json:"name"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	Password     *string   `json:"password" validate:"omitempty,min=6"`
	Age          *int      `json:"age" validate:"omitempty,gte=0"`
	City         *string   `json:"city"`
	Interests    *[]string `json:"interests"`
	AllowsOffers *bool     `json:"allowsOffers"`
}

// Update handles a partial account update. Self or admin only.
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrAuthentication
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.UpdateAccount(c.Request().Context(), actor, id, usecase.UpdateAccountInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Age:          req.Age,
		City:         req.City,
		Interests:    req.Interests,
		AllowsOffers: req.AllowsOffers,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account updated successfully")
}

// Delete removes an account. Self or admin only.
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account id")
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrAuthentication
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// CheckAdmin reports whether the caller's token carries the admin role.
func (h *AccountHandler) CheckAdmin(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrAuthentication
	}

	return response.Success(c, http.StatusOK, map[string]bool{
		"isAdmin": actor.Role == entity.RoleAdmin,
	}, "")
}

// CheckMerchant reports whether the caller's token carries the merchant role.
func (h *AccountHandler) CheckMerchant(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrAuthentication
	}

	return response.Success(c, http.StatusOK, map[string]bool{
		"isMerchant": actor.Role == entity.RoleMerchant,
	}, "")
}
