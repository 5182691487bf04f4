package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	args := m.Called(username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupAuthRouter(uc usecase.AuthUseCase) *gin.Engine {
	handler := NewAuthHandler(uc, logger.New())
	router := setupTestRouter()
	router.POST("/api/signup", handler.Signup)
	router.POST("/api/login", handler.Login)
	return router
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestSignup_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := setupAuthRouter(mockUseCase)

	mockUseCase.On("Signup", "admin", "admin@example.com", "s3cret").
		Return(&entity.User{ID: "user-1", Username: "admin", Email: "admin@example.com"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/signup", bytes.NewBufferString(`{"username":"admin","email":"admin@example.com","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeMessage(t, w)
	assert.Equal(t, "User registered successfully!", response["message"])
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "user-1", user["id"])
	assert.NotContains(t, user, "password")

	mockUseCase.AssertExpectations(t)
}

func TestSignup_Conflict(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := setupAuthRouter(mockUseCase)

	mockUseCase.On("Signup", "admin", "admin@example.com", "s3cret").Return(nil, usecase.ErrConflict)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/signup", strings.NewReader("username=admin&email=admin%40example.com&password=s3cret"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already registered.", decodeMessage(t, w)["message"])
}

func TestSignup_MissingFields(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := setupAuthRouter(mockUseCase)

	mockUseCase.On("Signup", "admin", "", "").Return(nil, usecase.MissingFields("email", "password"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/signup", bytes.NewBufferString(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: email, password.", decodeMessage(t, w)["message"])
}

func TestSignup_InternalError(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := setupAuthRouter(mockUseCase)

	mockUseCase.On("Signup", "admin", "a@b.c", "pw").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/signup", bytes.NewBufferString(`{"username":"admin","email":"a@b.c","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestLogin_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := setupAuthRouter(mockUseCase)

	mockUseCase.On("Login", "admin", "s3cret").Return(&entity.User{ID: "user-1", Username: "admin"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/login", bytes.NewBufferString(`{"username":"admin","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", decodeMessage(t, w)["message"])
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLogin_Unauthorized(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := setupAuthRouter(mockUseCase)

	mockUseCase.On("Login", "admin", "wrong").Return(nil, usecase.ErrUnauthorized)
	mockUseCase.On("Login", "ghost", "wrong").Return(nil, usecase.ErrUnauthorized)

	var bodies []string
	for _, username := range []string{"admin", "ghost"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/login", bytes.NewBufferString(`{"username":"`+username+`","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Contains(t, bodies[0], "Invalid username or password.")
	mockUseCase.AssertExpectations(t)
}
