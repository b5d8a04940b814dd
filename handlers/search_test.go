package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"fleet-compliance-api/config"
	"fleet-compliance-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSmith(t *testing.T) {
	app := setupTest(t)
	_, token := app.createUser(t, "reader", false)

	smith := &models.Employee{
		FirstName: "Anna", LastName: "Smith", Email: "anna@example.com",
		IsActive: true, RegistrationDate: date(2024, time.January, 1),
	}
	require.NoError(t, config.DB.Create(smith).Error)
	seedEmployee(t, "unrelated@example.com", true, date(2024, time.January, 1))

	// inactive smiths stay hidden
	hidden := &models.Employee{
		FirstName: "Bob", LastName: "Smithson", Email: "bobs@example.com",
		IsActive: false, RegistrationDate: date(2024, time.January, 1),
	}
	require.NoError(t, config.DB.Create(hidden).Error)

	trkSmith := &models.Trucker{
		FirstName: "Carl", LastName: "Jones", Email: strPtr("carl@smithhauling.com"),
		DriverLicenseNumber: "DL-800", ProvinceOfIssue: "ON",
		IsActive: true, RegistrationDate: date(2024, time.January, 1),
	}
	require.NoError(t, config.DB.Create(trkSmith).Error)
	seedTrucker(t, "DL-801", nil, true)

	w := app.do(t, http.MethodGet, "/api/search?query=smith", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	results := body["results"].([]interface{})
	require.Len(t, results, 2)

	// employees come first, then truckers
	first := results[0].(map[string]interface{})
	second := results[1].(map[string]interface{})
	assert.Equal(t, "employee", first["type"])
	assert.Equal(t, "Anna Smith", first["name"])
	assert.Equal(t, "anna@example.com", first["identifier"])
	assert.Equal(t, "trucker", second["type"])
	assert.Equal(t, "DL-800", second["identifier"])
}

func TestSearchCaseInsensitive(t *testing.T) {
	app := setupTest(t)
	_, token := app.createUser(t, "reader", false)
	emp := &models.Employee{
		FirstName: "MARIA", LastName: "LOPEZ", Email: "maria@example.com",
		IsActive: true, RegistrationDate: date(2024, time.January, 1),
	}
	require.NoError(t, config.DB.Create(emp).Error)

	w := app.do(t, http.MethodGet, "/api/search?query=lopez", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["count"])
}

func TestSearchCapsAtTen(t *testing.T) {
	app := setupTest(t)
	_, token := app.createUser(t, "reader", false)
	for i := 0; i < 12; i++ {
		seedEmployee(t, fmt.Sprintf("smith%d@example.com", i), true, date(2024, time.January, 1))
	}

	w := app.do(t, http.MethodGet, "/api/search?query=smith", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 10, body["count"])
}

func TestSearchEmptyQueryMatchesAllActive(t *testing.T) {
	app := setupTest(t)
	_, token := app.createUser(t, "reader", false)
	seedEmployee(t, "a@example.com", true, date(2024, time.January, 1))
	seedTrucker(t, "DL-900", nil, true)
	seedTrucker(t, "DL-901", nil, false)

	w := app.do(t, http.MethodGet, "/api/search?query=", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["count"])
}
