package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lv33global/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		ServerPort:           "0",
		GinMode:              gin.TestMode,
		CORSAllowOrigins:     []string{"*"},
		DBDriver:             config.DriverSQLite,
		SQLitePath:           filepath.Join(dir, "app.db"),
		ListCacheTTL:         time.Minute,
		AssetBackend:         config.AssetBackendLocal,
		UploadDir:            filepath.Join(dir, "uploads"),
		MaxMultipartMemoryMB: 8,
		BcryptCost:           10,
	}
}

func newTestApp(t *testing.T) *App {
	a, err := NewApp(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { a.Shutdown() })
	return a
}

func TestNewApp_Health(t *testing.T) {
	a := newTestApp(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNewApp_SignupThenLogin(t *testing.T) {
	a := newTestApp(t)

	post := func(path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		a.Handler().ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, post("/api/signup", `{"username":"admin","email":"admin@example.com","password":"s3cret"}`).Code)
	assert.Equal(t, http.StatusConflict, post("/api/signup", `{"username":"other","email":"admin@example.com","password":"x"}`).Code)
	assert.Equal(t, http.StatusOK, post("/api/login", `{"username":"admin","password":"s3cret"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, post("/api/login", `{"username":"admin","password":"nope"}`).Code)
}

func TestNewApp_ServesUploads(t *testing.T) {
	a := newTestApp(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "Starburst"))
	require.NoError(t, writer.WriteField("link", "https://example.com"))
	part, err := writer.CreateFormFile("image", "star.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("star-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/create-game", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	a.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/games", nil)
	a.Handler().ServeHTTP(w, req)
	var games []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	require.Len(t, games, 1)
	image := games[0]["image"].(string)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", image, nil)
	a.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "star-bytes", w.Body.String())
}

func TestNewApp_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBDriver = "mysql"

	_, err := NewApp(cfg)
	assert.Error(t, err)
}
