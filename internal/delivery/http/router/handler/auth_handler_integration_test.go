package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ideaforge/internal/delivery/http/validator"
	"ideaforge/internal/domain/entity"
	mockUsecase "ideaforge/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestAuthHandler_CreateProfile_Integration(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	handler := NewAuthHandler(uc, slog.Default())

	userID := uuid.New()
	uc.EXPECT().
		CreateProfile(mock.Anything, mock.AnythingOfType("*usecase.CreateProfileInput")).
		Return(&entity.Profile{
			ID:       userID,
			Username: "maker_jane",
			FullName: "Jane Doe",
			Role:     entity.RoleMaker,
		}, nil)

	body := `{"userId":"` + userID.String() + `","username":"maker_jane","fullName":"Jane Doe","role":"maker"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/create-profile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, "maker_jane")
}

func TestAuthHandler_CreateProfile_MissingUsername(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	handler := NewAuthHandler(uc, slog.Default())

	// No usecase expectation: validation rejects the payload before the
	// usecase is reached, and the error middleware renders the response.
	body := `{"userId":"` + uuid.New().String() + `","fullName":"Jane Doe"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/create-profile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateProfile(c)
	assert.Error(t, err)
}

func TestAuthHandler_Me_Integration(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	handler := NewAuthHandler(uc, slog.Default())

	userID := uuid.New()
	uc.EXPECT().
		GetProfile(mock.Anything, userID).
		Return(&entity.Profile{ID: userID, Username: "maker_jane"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	err := handler.Me(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "maker_jane")
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	handler := NewAuthHandler(uc, slog.Default())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestAuthHandler_SignupWebhook_Integration(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	handler := NewAuthHandler(uc, slog.Default())

	userID := uuid.New()
	uc.EXPECT().
		HandleSignupEvent(mock.Anything, mock.AnythingOfType("*usecase.SignupEventInput")).
		Return(&entity.Profile{
			ID:       userID,
			Username: "user_" + userID.String()[:8],
			FullName: "jane",
		}, nil)

	body := `{"event":"INSERT","record":{"id":"` + userID.String() + `","email":"jane@example.com"}}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SignupWebhook(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_"+userID.String()[:8])
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
