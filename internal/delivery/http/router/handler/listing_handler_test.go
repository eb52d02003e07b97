package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/validator"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/mocks"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingHandlerFixture struct {
	e       *echo.Echo
	uc      *mocks.ListingUsecase
	handler *ListingHandler
}

func newListingHandlerFixture(t *testing.T) *listingHandlerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	uc := &mocks.ListingUsecase{}

	return &listingHandlerFixture{
		e:       e,
		uc:      uc,
		handler: NewListingHandler(uc, logger),
	}
}

// request builds a context and a recorder; errors returned by the handler are
// routed through the registered HTTPErrorHandler, as echo's server would.
func (f *listingHandlerFixture) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return f.e.NewContext(req, rec), rec
}

func (f *listingHandlerFixture) renderError(c echo.Context, err error) {
	if err != nil {
		f.e.HTTPErrorHandler(err, c)
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestListingHandler_Get_Success(t *testing.T) {
	f := newListingHandlerFixture(t)

	id := uuid.New()
	businessID := uuid.New()
	f.uc.On("GetListing", mock.Anything, id).Return(&entity.Listing{
		ID:           id,
		ActivityType: "restaurante",
		Title:        "Tapas del Mercado",
		BusinessID:   businessID,
		Rating: entity.Rating{
			AverageScore:     4.5,
			TotalRatingCount: 2,
		},
	}, nil)

	c, rec := f.request(http.MethodGet, "/listings/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, f.handler.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])

	// The body must use the API's camelCase field names, matching the
	// request DTOs and the field names carried in FORBIDDEN_FIELD errors.
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "restaurante", data["activityType"])
	assert.Equal(t, "Tapas del Mercado", data["title"])
	assert.Equal(t, businessID.String(), data["businessRef"])
	rating, ok := data["rating"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 4.5, rating["averageScore"])
	assert.Equal(t, float64(2), rating["totalRatingCount"])
	assert.NotContains(t, rec.Body.String(), `"ActivityType"`)
	assert.NotContains(t, rec.Body.String(), `"AverageScore"`)
}

func TestListingHandler_Get_NotFoundEnvelope(t *testing.T) {
	f := newListingHandlerFixture(t)

	id := uuid.New()
	f.uc.On("GetListing", mock.Anything, id).Return(nil, domainerrors.ErrListingNotFound)

	c, rec := f.request(http.MethodGet, "/listings/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	f.renderError(c, f.handler.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	errInfo, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "LISTING_NOT_FOUND", errInfo["code"])
}

func TestListingHandler_Get_InvalidID(t *testing.T) {
	f := newListingHandlerFixture(t)

	c, rec := f.request(http.MethodGet, "/listings/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, f.handler.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "INVALID_INPUT", errInfo["code"])
	f.uc.AssertNotCalled(t, "GetListing", mock.Anything, mock.Anything)
}

func TestListingHandler_Update_ForbiddenFieldEnvelope(t *testing.T) {
	f := newListingHandlerFixture(t)

	id := uuid.New()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}
	f.uc.On("UpdateListing", mock.Anything, actor, id, mock.Anything).
		Return(nil, domainerrors.NewForbiddenFieldError("title"))

	c, rec := f.request(http.MethodPut, "/listings/"+id.String(), `{"title":"Hacked"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set("actor", actor)

	f.renderError(c, f.handler.Update(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	errInfo, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FORBIDDEN_FIELD", errInfo["code"])
	assert.Equal(t, "title", errInfo["details"])
}

func TestListingHandler_Update_MissingActor(t *testing.T) {
	f := newListingHandlerFixture(t)

	id := uuid.New()
	c, rec := f.request(http.MethodPut, "/listings/"+id.String(), `{"summary":"Updated"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	f.renderError(c, f.handler.Update(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.uc.AssertNotCalled(t, "UpdateListing", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListingHandler_Update_ForwardsReview(t *testing.T) {
	f := newListingHandlerFixture(t)

	id := uuid.New()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleUser}
	updated := &entity.Listing{ID: id, Rating: entity.Rating{AverageScore: 3.0, TotalRatingCount: 2}}

	f.uc.On("UpdateListing", mock.Anything, actor, id, mock.MatchedBy(func(input usecase.UpdateListingInput) bool {
		return input.Review != nil && input.Review.Score == 2.0 && input.Review.Text == "Meh"
	})).Return(updated, nil)

	c, rec := f.request(http.MethodPut, "/listings/"+id.String(), `{"review":{"score":2.0,"text":"Meh"}}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set("actor", actor)

	require.NoError(t, f.handler.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	f.uc.AssertExpectations(t)
}

func TestListingHandler_Create_MerchantPublishesAsSelf(t *testing.T) {
	f := newListingHandlerFixture(t)

	merchantID := uuid.New()
	businessID := uuid.New()
	actor := usecase.Actor{ID: merchantID, Role: entity.RoleMerchant}

	f.uc.On("CreateListing", mock.Anything, mock.MatchedBy(func(input usecase.CreateListingInput) bool {
		// ownerRef in the body must not override a merchant's own identity
		return input.OwnerID == merchantID && input.BusinessID == businessID
	})).Return(&entity.Listing{ID: uuid.New(), OwnerID: merchantID}, nil)

	body := `{"city":"Valencia","activityType":"restaurant","title":"La Pepica",` +
		`"businessRef":"` + businessID.String() + `","ownerRef":"` + uuid.New().String() + `"}`
	c, rec := f.request(http.MethodPost, "/listings", body)
	c.Set("actor", actor)

	require.NoError(t, f.handler.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	f.uc.AssertExpectations(t)
}

func TestListingHandler_Create_AdminPublishesOnBehalf(t *testing.T) {
	f := newListingHandlerFixture(t)

	ownerID := uuid.New()
	businessID := uuid.New()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	f.uc.On("CreateListing", mock.Anything, mock.MatchedBy(func(input usecase.CreateListingInput) bool {
		return input.OwnerID == ownerID
	})).Return(&entity.Listing{ID: uuid.New(), OwnerID: ownerID}, nil)

	body := `{"city":"Valencia","activityType":"restaurant","title":"La Pepica",` +
		`"businessRef":"` + businessID.String() + `","ownerRef":"` + ownerID.String() + `"}`
	c, _ := f.request(http.MethodPost, "/listings", body)
	c.Set("actor", actor)

	require.NoError(t, f.handler.Create(c))
	f.uc.AssertExpectations(t)
}

func TestListingHandler_Create_MissingTitle(t *testing.T) {
	f := newListingHandlerFixture(t)

	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleMerchant}
	body := `{"city":"Valencia","activityType":"restaurant","businessRef":"` + uuid.New().String() + `"}`
	c, rec := f.request(http.MethodPost, "/listings", body)
	c.Set("actor", actor)

	f.renderError(c, f.handler.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errInfo["code"])
	f.uc.AssertNotCalled(t, "CreateListing", mock.Anything, mock.Anything)
}

func TestListingHandler_QRCode_ReturnsPNG(t *testing.T) {
	f := newListingHandlerFixture(t)

	id := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	f.uc.On("GenerateListingQR", mock.Anything, id).Return(png, nil)

	c, rec := f.request(http.MethodGet, "/listings/"+id.String()+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, f.handler.QRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestListingHandler_ListByScore_RejectsUnknownOrder(t *testing.T) {
	f := newListingHandlerFixture(t)

	c, rec := f.request(http.MethodGet, "/listings/sort/score/sideways", "")
	c.SetParamNames("order")
	c.SetParamValues("sideways")

	require.NoError(t, f.handler.ListByScore(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.uc.AssertNotCalled(t, "ListListingsByScore", mock.Anything, mock.Anything)
}

func TestListingHandler_ListByScore_Descending(t *testing.T) {
	f := newListingHandlerFixture(t)

	f.uc.On("ListListingsByScore", mock.Anything, true).Return([]*entity.Listing{
		{ID: uuid.New(), Rating: entity.Rating{AverageScore: 4.8}},
		{ID: uuid.New(), Rating: entity.Rating{AverageScore: 3.1}},
	}, nil)

	c, rec := f.request(http.MethodGet, "/listings/sort/score/desc", "")
	c.SetParamNames("order")
	c.SetParamValues("desc")

	require.NoError(t, f.handler.ListByScore(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	f.uc.AssertExpectations(t)
}

func TestListingHandler_Archive_AlreadyArchivedEnvelope(t *testing.T) {
	f := newListingHandlerFixture(t)

	id := uuid.New()
	f.uc.On("ArchiveListing", mock.Anything, id).Return(nil, domainerrors.ErrAlreadyArchived)

	c, rec := f.request(http.MethodPatch, "/listings/"+id.String()+"/archive", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	f.renderError(c, f.handler.Archive(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "ALREADY_ARCHIVED", errInfo["code"])
}

func TestListingHandler_Delete_Success(t *testing.T) {
	f := newListingHandlerFixture(t)

	id := uuid.New()
	f.uc.On("DeleteListing", mock.Anything, id).Return(nil)

	c, rec := f.request(http.MethodDelete, "/listings/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, f.handler.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
}
