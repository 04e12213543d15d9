package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/yokoo-bicycle/internal/application"
	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	repo "github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
	"github.com/oksasatya/yokoo-bicycle/internal/interface/middleware"
	"github.com/oksasatya/yokoo-bicycle/pkg/helpers"
	"github.com/oksasatya/yokoo-bicycle/pkg/validation"
)

type stubAccountRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*entity.Account
	nextID    int
	findCalls int
	findErr   error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byEmail: map[string]*entity.Account{}}
}

func (s *stubAccountRepo) Create(_ context.Context, a *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.Role == "" {
		a.Role = entity.RoleStandard
	}
	s.nextID++
	a.ID = fmt.Sprintf("id-%d", s.nextID)
	cp := *a
	s.byEmail[a.Email] = &cp
	return nil
}

func (s *stubAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	a, ok := s.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *stubAccountRepo) UpsertByEmail(_ context.Context, a *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.byEmail[a.Email]; ok {
		existing.Name = a.Name
		existing.PhotoURL = a.PhotoURL
		a.ID = existing.ID
		a.Role = existing.Role
		return nil
	}
	if a.Role == "" {
		a.Role = entity.RoleStandard
	}
	s.nextID++
	a.ID = fmt.Sprintf("id-%d", s.nextID)
	cp := *a
	s.byEmail[a.Email] = &cp
	return nil
}

func (s *stubAccountRepo) SetRole(_ context.Context, email string, role entity.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.byEmail[email]; ok {
		existing.Role = role
		return nil
	}
	s.nextID++
	s.byEmail[email] = &entity.Account{ID: fmt.Sprintf("id-%d", s.nextID), Email: email, Role: role}
	return nil
}

func (s *stubAccountRepo) role(email string) (entity.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byEmail[email]
	if !ok {
		return "", false
	}
	return a.Role, true
}

var _ repo.AccountRepository = (*stubAccountRepo)(nil)

var initValidation sync.Once

func newAccountRouter(t *testing.T, store *stubAccountRepo, verifier *helpers.IDTokenVerifier) *gin.Engine {
	t.Helper()
	initValidation.Do(validation.Init)
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := NewAccountHandler(application.NewAccountService(store, logger), logger)

	r := gin.New()
	r.POST("/users", h.Create)
	r.PUT("/users", h.Upsert)
	r.GET("/users/:email", h.AdminStatus)
	r.PUT("/users/makeAdmin", middleware.Identity(verifier), h.MakeAdmin)
	return r
}

func doJSON(r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedStub(t *testing.T, s *stubAccountRepo, email string, role entity.Role) {
	t.Helper()
	require.NoError(t, s.Create(context.Background(), &entity.Account{Email: email, Role: role}))
}

func TestMakeAdmin_NoBearerForbidden(t *testing.T) {
	store := newStubAccountRepo()
	seedStub(t, store, "target@x.com", entity.RoleStandard)
	v := helpers.NewIDTokenVerifier("test-secret", time.Hour)
	r := newAccountRouter(t, store, v)

	w := doJSON(r, http.MethodPut, "/users/makeAdmin", `{"email":"target@x.com"}`, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := envelope(t, w)
	assert.Equal(t, "you do not have access to make admin", body["message"])
	role, _ := store.role("target@x.com")
	assert.Equal(t, entity.RoleStandard, role, "no mutation on a rejected request")
}

func TestMakeAdmin_MalformedBearerRejectedBeforeStore(t *testing.T) {
	store := newStubAccountRepo()
	v := helpers.NewIDTokenVerifier("test-secret", time.Hour)
	r := newAccountRouter(t, store, v)

	w := doJSON(r, http.MethodPut, "/users/makeAdmin", `{"email":"target@x.com"}`, "garbage")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, store.findCalls, "a rejected credential must not reach the store")
}

func TestMakeAdmin_AdminPrincipalElevatesTarget(t *testing.T) {
	store := newStubAccountRepo()
	seedStub(t, store, "boss@x.com", entity.RoleAdmin)
	v := helpers.NewIDTokenVerifier("test-secret", time.Hour)
	token, _, err := v.Issue("boss@x.com")
	require.NoError(t, err)
	r := newAccountRouter(t, store, v)

	w := doJSON(r, http.MethodPut, "/users/makeAdmin", `{"email":"newbie@x.com"}`, token)

	assert.Equal(t, http.StatusOK, w.Code)
	role, exists := store.role("newbie@x.com")
	require.True(t, exists)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestMakeAdmin_StandardPrincipalForbidden(t *testing.T) {
	store := newStubAccountRepo()
	seedStub(t, store, "pleb@x.com", entity.RoleStandard)
	seedStub(t, store, "target@x.com", entity.RoleStandard)
	v := helpers.NewIDTokenVerifier("test-secret", time.Hour)
	token, _, err := v.Issue("pleb@x.com")
	require.NoError(t, err)
	r := newAccountRouter(t, store, v)

	w := doJSON(r, http.MethodPut, "/users/makeAdmin", `{"email":"target@x.com"}`, token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := envelope(t, w)
	assert.Equal(t, "you do not have access to make admin", body["message"])
	role, _ := store.role("target@x.com")
	assert.Equal(t, entity.RoleStandard, role)
}

func TestMakeAdmin_StoreErrorIs500Not403(t *testing.T) {
	store := newStubAccountRepo()
	store.findErr = errors.New("connection refused")
	v := helpers.NewIDTokenVerifier("test-secret", time.Hour)
	token, _, err := v.Issue("boss@x.com")
	require.NoError(t, err)
	r := newAccountRouter(t, store, v)

	w := doJSON(r, http.MethodPut, "/users/makeAdmin", `{"email":"target@x.com"}`, token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMakeAdmin_InvalidPayload(t *testing.T) {
	store := newStubAccountRepo()
	seedStub(t, store, "boss@x.com", entity.RoleAdmin)
	v := helpers.NewIDTokenVerifier("test-secret", time.Hour)
	token, _, err := v.Issue("boss@x.com")
	require.NoError(t, err)
	r := newAccountRouter(t, store, v)

	w := doJSON(r, http.MethodPut, "/users/makeAdmin", `{"email":"not-an-email"}`, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminStatus(t *testing.T) {
	store := newStubAccountRepo()
	seedStub(t, store, "boss@x.com", entity.RoleAdmin)
	seedStub(t, store, "pleb@x.com", entity.RoleStandard)
	v := helpers.NewIDTokenVerifier("test-secret", time.Hour)
	r := newAccountRouter(t, store, v)

	tests := []struct {
		email string
		want  bool
	}{
		{"boss@x.com", true},
		{"pleb@x.com", false},
		{"nobody@x.com", false},
	}
	for _, tt := range tests {
		w := doJSON(r, http.MethodGet, "/users/"+tt.email, "", "")
		require.Equal(t, http.StatusOK, w.Code, tt.email)
		body := envelope(t, w)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok, tt.email)
		assert.Equal(t, tt.want, data["admin"], tt.email)
	}
}

func TestCreateAccount(t *testing.T) {
	store := newStubAccountRepo()
	v := helpers.NewIDTokenVerifier("test-secret", time.Hour)
	r := newAccountRouter(t, store, v)

	w := doJSON(r, http.MethodPost, "/users", `{"email":"new@x.com","displayName":"New"}`, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	role, exists := store.role("new@x.com")
	require.True(t, exists)
	assert.Equal(t, entity.RoleStandard, role, "registration never grants admin")
}

func TestUpsertAccount_PreservesRole(t *testing.T) {
	store := newStubAccountRepo()
	seedStub(t, store, "boss@x.com", entity.RoleAdmin)
	v := helpers.NewIDTokenVerifier("test-secret", time.Hour)
	r := newAccountRouter(t, store, v)

	w := doJSON(r, http.MethodPut, "/users", `{"email":"boss@x.com","displayName":"Renamed"}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	role, _ := store.role("boss@x.com")
	assert.Equal(t, entity.RoleAdmin, role)
}
