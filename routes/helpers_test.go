package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-app/config"
	"recipe-app/infra"
	"recipe-app/models"
	"recipe-app/repositories"
	"recipe-app/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret-for-api-tests"

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	users  services.IUserService
	auth   services.IAuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := infra.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	tokenDB, err := infra.SetupTokenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, infra.MigrateTokenDB(tokenDB))

	cfg := &config.Config{
		SecretKey:      testSecret,
		AccessTokenTTL: time.Hour,
		BcryptCost:     bcrypt.MinCost,
		MediaRoot:      t.TempDir(),
	}

	userRepository := repositories.NewUserRepository(db)
	hasher := services.NewBcryptHasher(cfg.BcryptCost)

	return &testServer{
		router: SetupRouter(cfg, db, tokenDB),
		db:     db,
		cfg:    cfg,
		users:  services.NewUserService(userRepository, hasher),
		auth:   services.NewAuthService(userRepository, repositories.NewTokenRepository(tokenDB), hasher, cfg.SecretKey, cfg.AccessTokenTTL),
	}
}

func (s *testServer) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := s.users.CreateUser(context.Background(), email, "11111")
	require.NoError(t, err)
	return user
}

// tokenFor issues a token without going through the login endpoint.
func (s *testServer) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := s.auth.CreateToken(user)
	require.NoError(t, err)
	return *token
}

func (s *testServer) createTag(t *testing.T, user *models.User, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, UserID: user.ID}
	require.NoError(t, s.db.Create(tag).Error)
	return tag
}

func (s *testServer) createIngredient(t *testing.T, user *models.User, name string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, UserID: user.ID}
	require.NoError(t, s.db.Create(ingredient).Error)
	return ingredient
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
