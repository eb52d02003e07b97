package handler

import (
	"log/slog"
	"net/http"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for listing-related handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{uc: uc, logger: logger}
}

type createListingRequest struct {
	City         string    `json:"city" validate:"required"`
	ActivityType string    `json:"activityType" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	Summary      string    `json:"summary"`
	BodyTexts    []string  `json:"bodyTexts"`
	Images       []string  `json:"images"`
	BusinessRef  uuid.UUID `json:"businessRef" validate:"required"`
	OwnerRef     uuid.UUID `json:"ownerRef"`
}

// Create publishes a new listing. Admins may publish on behalf of any
// merchant via ownerRef; merchants always publish as themselves.
func (h *ListingHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrAuthentication
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ownerID := actor.ID
	if actor.IsAdmin() && req.OwnerRef != uuid.Nil {
		ownerID = req.OwnerRef
	}

	listing, err := h.uc.CreateListing(c.Request().Context(), usecase.CreateListingInput{
		City:         req.City,
		ActivityType: req.ActivityType,
		Title:        req.Title,
		Summary:      req.Summary,
		BodyTexts:    req.BodyTexts,
		Images:       req.Images,
		BusinessID:   req.BusinessRef,
		OwnerID:      ownerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created successfully")
}

// List returns every active listing.
func (h *ListingHandler) List(c echo.Context) error {
	listings, err := h.uc.ListListings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Get returns a single active listing.
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	listing, err := h.uc.GetListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// ListByActivity filters active listings by activity-type substring.
func (h *ListingHandler) ListByActivity(c echo.Context) error {
	activity := c.Param("activity")
	if activity == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Activity is required")
	}

	listings, err := h.uc.ListListingsByActivity(c.Request().Context(), activity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// ListByOwner returns the active listings of one merchant.
func (h *ListingHandler) ListByOwner(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid owner id")
	}

	listings, err := h.uc.ListListingsByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// ListByScore returns active listings ordered by average score; the order
// path segment is either "asc" or "desc".
func (h *ListingHandler) ListByScore(c echo.Context) error {
	order := c.Param("order")
	if order != "asc" && order != "desc" {
		return response.BadRequest(c, "INVALID_INPUT", "Order must be 'asc' or 'desc'")
	}

	listings, err := h.uc.ListListingsByScore(c.Request().Context(), order == "desc")
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// QRCode renders a PNG QR code pointing at the listing's public page.
func (h *ListingHandler) QRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	png, err := h.uc.GenerateListingQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type ratingPatchRequest struct {
	AverageScore     *float64  `json:"averageScore" validate:"omitempty,gte=0,lte=5"`
	TotalRatingCount *int      `json:"totalRatingCount" validate:"omitempty,gte=0"`
	ReviewTexts      *[]string `json:"reviewTexts"`
}

type reviewRequest struct {
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

type updateListingRequest struct {
	City         *string             `json:"city"`
	ActivityType *string             `json:"activityType"`
	Title        *string             `json:"title"`
	Summary      *string             `json:"summary"`
	BodyTexts    *[]string           `json:"bodyTexts"`
	Images       *[]string           `json:"images"`
	BusinessRef  *uuid.UUID          `json:"businessRef"`
	Rating       *ratingPatchRequest `json:"rating"`
	Review       *reviewRequest      `json:"review"`
}

// Update applies a role-guarded partial update to a listing. The patch may
// carry a review submission, which is folded into the rating server-side.
func (h *ListingHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrAuthentication
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.UpdateListingInput{
		City:         req.City,
		ActivityType: req.ActivityType,
		Title:        req.Title,
		Summary:      req.Summary,
		BodyTexts:    req.BodyTexts,
		Images:       req.Images,
		BusinessID:   req.BusinessRef,
	}
	if req.Rating != nil {
		input.Rating = &usecase.RatingPatch{
			AverageScore:     req.Rating.AverageScore,
			TotalRatingCount: req.Rating.TotalRatingCount,
			ReviewTexts:      req.Rating.ReviewTexts,
		}
	}
	if req.Review != nil {
		input.Review = &usecase.ReviewInput{
			Score: req.Review.Score,
			Text:  req.Review.Text,
		}
	}

	listing, err := h.uc.UpdateListing(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing updated successfully")
}

// SubmitReview folds one review submission into the listing's rating.
func (h *ListingHandler) SubmitReview(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review input")
	}

	listing, err := h.uc.SubmitReview(c.Request().Context(), id, usecase.ReviewInput{
		Score: req.Score,
		Text:  req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Review submitted successfully")
}

// Archive retires a listing from every default read path. The record stays.
func (h *ListingHandler) Archive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	listing, err := h.uc.ArchiveListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing archived successfully")
}

// Delete removes a listing permanently, archived or not. Admin only.
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	if err := h.uc.DeleteListing(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing deleted successfully")
}
