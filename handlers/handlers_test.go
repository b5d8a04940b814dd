package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"fleet-compliance-api/config"
	"fleet-compliance-api/middleware"
	"fleet-compliance-api/models"
	"fleet-compliance-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	router *gin.Engine
	auth   *middleware.Auth
}

func setupTest(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	cfg := &config.Config{
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}
	auth := middleware.NewAuth(cfg)
	r := gin.New()
	routes.SetupRoutes(r, auth)
	return &testApp{router: r, auth: auth}
}

func (app *testApp) createUser(t *testing.T, username string, admin bool) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: string(hash),
		FullName:       "Test " + username,
		IsActive:       true,
		IsAdmin:        admin,
	}
	require.NoError(t, config.DB.Create(user).Error)
	token, err := app.auth.GenerateToken(user)
	require.NoError(t, err)
	return user, token
}

func (app *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func seedEmployee(t *testing.T, email string, active bool, registered time.Time) *models.Employee {
	t.Helper()
	emp := &models.Employee{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            email,
		Position:         "Dispatcher",
		IsActive:         active,
		RegistrationDate: registered,
	}
	require.NoError(t, config.DB.Create(emp).Error)
	return emp
}

func requireVerify(t *testing.T, docID uint) {
	t.Helper()
	stamped := date(2024, time.June, 1)
	require.NoError(t, config.DB.Model(&models.Document{}).Where("id = ?", docID).
		Updates(map[string]interface{}{"is_verified": true, "verification_date": stamped}).Error)
}

func seedTrucker(t *testing.T, license string, company *string, active bool) *models.Trucker {
	t.Helper()
	trk := &models.Trucker{
		FirstName:           "John",
		LastName:            "Driver",
		PhoneNumber:         "555-0000",
		DriverLicenseNumber: license,
		ProvinceOfIssue:     "ON",
		CompanyName:         company,
		IsActive:            active,
		RegistrationDate:    date(2024, time.January, 1),
	}
	require.NoError(t, config.DB.Create(trk).Error)
	return trk
}
