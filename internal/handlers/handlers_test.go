package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/collablab-dev/collablab/internal/auth"
	"github.com/collablab-dev/collablab/internal/documents"
	"github.com/collablab-dev/collablab/internal/models"
	"github.com/collablab-dev/collablab/internal/repository"
	"github.com/collablab-dev/collablab/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *auth.TokenService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.SavedProject{},
		&models.CollaborationRequest{},
	))

	docs, err := documents.NewStore(t.TempDir())
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-secret")

	r := router.New(router.Deps{
		DB:       conn,
		Tokens:   tokens,
		Users:    repository.NewUserStore(conn),
		Projects: repository.NewProjectStore(conn),
		Saved:    repository.NewSavedStore(conn),
		Requests: repository.NewRequestStore(conn, docs),
	})

	return &testApp{router: r, db: conn, tokens: tokens}
}

func (app *testApp) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func (app *testApp) signup(t *testing.T, name, email string) string {
	t.Helper()

	w := app.doJSON(t, http.MethodPost, "/auth/signup", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)

	return response.AccessToken
}

func (app *testApp) createProject(t *testing.T, token string, body gin.H) uint {
	t.Helper()

	w := app.doJSON(t, http.MethodPost, "/projects", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	return response.ID
}

func (app *testApp) apply(t *testing.T, token string, projectID uint, document []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	require.NoError(t, writer.WriteField("message", "I would love to help"))
	require.NoError(t, writer.WriteField("portfolio_url", "https://portfolio.example"))

	part, err := writer.CreateFormFile("document", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write(document)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/projects/%d/apply", projectID), &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func TestLiveness(t *testing.T) {
	app := newTestApp(t)

	w := app.doJSON(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")
}

func TestDatabaseDiagnostic(t *testing.T) {
	app := newTestApp(t)

	w := app.doJSON(t, http.MethodGet, "/test", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Database    string   `json:"database"`
		Collections []string `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "connected", response.Database)
	assert.NotEmpty(t, response.Collections)
	assert.LessOrEqual(t, len(response.Collections), 10)
}
