package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocode/elearning/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.StoragePath = t.TempDir()
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.JWT.Secret = "bootstrap-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.Seed.AdminEmail = "root@example.com"
	cfg.Seed.AdminUsername = "root"
	return cfg
}

func TestRouterWiring(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)

	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	router := SetupRouter(cfg, deps, zerolog.Nop())

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/courses/my-courses/", http.StatusUnauthorized},
		{http.MethodGet, "/api/courses/1/full/", http.StatusUnauthorized},
		{http.MethodGet, "/api/courses/monitor/dashboard/", http.StatusUnauthorized},
		{http.MethodPost, "/api/courses/1/enroll/", http.StatusUnauthorized},
		{http.MethodPost, "/api/courses/enrollment/1/manage/", http.StatusUnauthorized},
		{http.MethodPost, "/api/courses/lessons/1/complete/", http.StatusUnauthorized},
		{http.MethodGet, "/api/users/me/", http.StatusUnauthorized},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestBuildDependenciesFileStorageURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.PublicURL = "https://api.example.com/"

	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Server.StoragePath, "thumbnails", "x.png"),
		deps.FileStorage.GetFullPath("https://api.example.com/uploads/thumbnails/x.png"))
}

func TestAdminParams(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed.AdminPassword = "pw"

	params := AdminParams(cfg)
	assert.Equal(t, "root@example.com", params.Email)
	assert.Equal(t, "root", params.Username)
	assert.Equal(t, "pw", params.Password)
}
