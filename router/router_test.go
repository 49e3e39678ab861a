package router_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/mobility/auth"
	"github.com/dev-mohitbeniwal/mobility/controller"
	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/model"
	"github.com/dev-mohitbeniwal/mobility/pdp/engine"
	"github.com/dev-mohitbeniwal/mobility/router"
	"github.com/dev-mohitbeniwal/mobility/secret"
	"github.com/dev-mohitbeniwal/mobility/service"
	"github.com/dev-mohitbeniwal/mobility/test/fake"
	mock_audit "github.com/dev-mohitbeniwal/mobility/test/mock"
	"github.com/dev-mohitbeniwal/mobility/util"
)

const (
	projectID   = "mobility-test"
	adminSecret = "admin-secret"
	signingKID  = "kid-1"
)

type staticKeys map[string]interface{}

func (s staticKeys) Key(_ context.Context, kid string) (interface{}, error) {
	if key, ok := s[kid]; ok {
		return key, nil
	}
	return nil, mobility_errors.ErrUnknownSigningKey
}

type testServer struct {
	handler http.Handler
	store   *fake.Store
	key     *rsa.PrivateKey
	hasher  *secret.PasswordHasher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	store := fake.NewStore()
	gate, err := engine.NewRoleGate()
	require.NoError(t, err)
	tokens, err := auth.NewAdminTokens(adminSecret, time.Hour)
	require.NoError(t, err)
	codec, err := secret.NewCodec("server-secret", "keySalt", "salt", "pepper")
	require.NoError(t, err)
	hasher := secret.NewPasswordHasher("pepper", 4)

	auditService := &mock_audit.MockAuditService{}
	auditService.On("LogAccess", mock.Anything, mock.Anything).Return(nil)

	bus := util.NewEventBus()
	t.Cleanup(bus.Wait)
	services := service.InitializeServices(service.Dependencies{
		Store:           store,
		Engine:          engine.NewEngine(store, gate, time.Second),
		AuditService:    auditService,
		Codec:           codec,
		AdminTokens:     tokens,
		PasswordHasher:  hasher,
		ValidationUtil:  util.NewValidationUtil(),
		CacheService:    util.NewCacheService(nil, time.Minute),
		NotificationSvc: util.NewNotificationService(nil, ""),
		EventBus:        bus,
	})

	verifier := auth.NewVerifier(time.Second,
		tokens,
		auth.NewFirebaseAuthenticator(projectID, staticKeys{signingKID: &key.PublicKey}),
	)

	handler := router.SetupRouter(controller.InitializeControllers(services), verifier, router.Options{})
	return &testServer{handler: handler, store: store, key: key, hasher: hasher}
}

func (s *testServer) idToken(t *testing.T, subject string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, auth.FirebaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://securetoken.google.com/" + projectID,
			Audience:  jwt.ClaimStrings{projectID},
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	token.Header["kid"] = signingKID
	signed, err := token.SignedString(s.key)
	require.NoError(t, err)
	return signed
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func TestClaimFlow(t *testing.T) {
	s := newTestServer(t)
	_, err := s.store.CreateVehicle(context.Background(), &model.Vehicle{VehicleID: "V0"})
	require.NoError(t, err)

	alice := s.idToken(t, "alice")
	bob := s.idToken(t, "bob")

	w := s.do(http.MethodPost, "/api/v1/vehicles/V0/claim", alice, `{"model":"M-200"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/vehicles/V0/claim", bob, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	var denial map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &denial))
	assert.Equal(t, "NOT_OWNER", denial["reason"])

	w = s.do(http.MethodGet, "/api/v1/vehicles/V0", alice, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/vehicles/V0", bob, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/api/v1/vehicles/me", alice, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var mine []model.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "V0", mine[0].VehicleID)

	w = s.do(http.MethodGet, "/api/v1/vehicles/missing", alice, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCredentials(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/v1/users/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "NO_CREDENTIAL")

	w = s.do(http.MethodGet, "/api/v1/users/me", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.AdminClaims{
		ID:   "a1",
		Role: string(model.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(adminSecret))
	require.NoError(t, err)

	w = s.do(http.MethodGet, "/api/v1/admin/vehicles", signed, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIAL")
}

func TestAdminLoginFlow(t *testing.T) {
	s := newTestServer(t)
	station := s.store.AddRepairStation(model.RepairStation{Code: "ST-01", Label: "Central Station"})
	hash, err := s.hasher.Hash("correct horse")
	require.NoError(t, err)
	s.store.AddAdmin(model.Admin{LoginID: "ops", PasswordHash: hash, RepairStationID: station.ID})

	w := s.do(http.MethodGet, "/api/v1/repair-stations", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/v1/admin/login", "", `{"id":"ops","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/v1/admin/login", "", `{"id":"ops","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = s.do(http.MethodPost, "/api/v1/admin/vehicles", login.Token, `{"model":"M-100"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var generated model.GeneratedVehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &generated))

	// The printed QR token resolves for any signed-in user.
	w = s.do(http.MethodGet, "/api/v1/qr/"+generated.QRToken, s.idToken(t, "carol"), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/admin/vehicles", s.idToken(t, "carol"), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "ROLE_FORBIDDEN")
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
