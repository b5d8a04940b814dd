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

func seedDocument(t *testing.T, employeeID *uint, truckerID *uint) *models.Document {
	t.Helper()
	doc := &models.Document{
		DocumentType: "license_scan",
		FilePath:     "/uploads/doc.pdf",
		UploadDate:   date(2024, time.May, 1),
		EmployeeID:   employeeID,
		TruckerID:    truckerID,
	}
	require.NoError(t, config.DB.Create(doc).Error)
	return doc
}

func TestCreateDocumentForEmployee(t *testing.T) {
	app := setupTest(t)
	_, token := app.createUser(t, "uploader", false)
	emp := seedEmployee(t, "owner@example.com", true, date(2024, time.January, 1))

	// document upload only needs authenticated access
	w := app.do(t, http.MethodPost, "/api/documents", token, map[string]interface{}{
		"document_type": "contract",
		"file_path":     "/uploads/contract.pdf",
		"employee_id":   emp.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateDocumentParentValidation(t *testing.T) {
	app := setupTest(t)
	_, token := app.createUser(t, "uploader", false)
	emp := seedEmployee(t, "owner@example.com", true, date(2024, time.January, 1))
	trk := seedTrucker(t, "DL-600", nil, true)

	// unknown parent
	w := app.do(t, http.MethodPost, "/api/documents", token, map[string]interface{}{
		"document_type": "contract",
		"file_path":     "/uploads/x.pdf",
		"employee_id":   9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// both parents
	w = app.do(t, http.MethodPost, "/api/documents", token, map[string]interface{}{
		"document_type": "contract",
		"file_path":     "/uploads/x.pdf",
		"employee_id":   emp.ID,
		"trucker_id":    trk.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// no parent
	w = app.do(t, http.MethodPost, "/api/documents", token, map[string]interface{}{
		"document_type": "contract",
		"file_path":     "/uploads/x.pdf",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyDocumentStampsDate(t *testing.T) {
	app := setupTest(t)
	_, adminToken := app.createUser(t, "admin", true)
	emp := seedEmployee(t, "owner@example.com", true, date(2024, time.January, 1))
	doc := seedDocument(t, &emp.ID, nil)

	w := app.do(t, http.MethodPut, fmt.Sprintf("/api/documents/%d", doc.ID), adminToken, map[string]interface{}{
		"is_verified": true,
		"verified_by": "inspector-7",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Document
	require.NoError(t, config.DB.First(&updated, doc.ID).Error)
	assert.True(t, updated.IsVerified)
	require.NotNil(t, updated.VerificationDate)
	require.NotNil(t, updated.VerifiedBy)
	assert.Equal(t, "inspector-7", *updated.VerifiedBy)
}

func TestUnverifyClearsVerificationFields(t *testing.T) {
	app := setupTest(t)
	_, adminToken := app.createUser(t, "admin", true)
	emp := seedEmployee(t, "owner@example.com", true, date(2024, time.January, 1))
	doc := seedDocument(t, &emp.ID, nil)

	verifiedAt := date(2024, time.June, 1)
	verifier := "inspector-7"
	require.NoError(t, config.DB.Model(doc).Updates(map[string]interface{}{
		"is_verified":       true,
		"verification_date": verifiedAt,
		"verified_by":       verifier,
	}).Error)

	// clearing wins even when the same payload tries to set verified_by
	w := app.do(t, http.MethodPut, fmt.Sprintf("/api/documents/%d", doc.ID), adminToken, map[string]interface{}{
		"is_verified": false,
		"verified_by": "someone-else",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Document
	require.NoError(t, config.DB.First(&updated, doc.ID).Error)
	assert.False(t, updated.IsVerified)
	assert.Nil(t, updated.VerificationDate)
	assert.Nil(t, updated.VerifiedBy)
}

func TestDocumentPartialUpdateLeavesVerification(t *testing.T) {
	app := setupTest(t)
	_, adminToken := app.createUser(t, "admin", true)
	emp := seedEmployee(t, "owner@example.com", true, date(2024, time.January, 1))
	doc := seedDocument(t, &emp.ID, nil)

	w := app.do(t, http.MethodPut, fmt.Sprintf("/api/documents/%d", doc.ID), adminToken, map[string]interface{}{
		"file_path": "/uploads/renamed.pdf",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Document
	require.NoError(t, config.DB.First(&updated, doc.ID).Error)
	assert.Equal(t, "/uploads/renamed.pdf", updated.FilePath)
	assert.False(t, updated.IsVerified)
	assert.Nil(t, updated.VerificationDate)
	assert.Equal(t, "license_scan", updated.DocumentType)
}

func TestArchiveDocument(t *testing.T) {
	app := setupTest(t)
	_, adminToken := app.createUser(t, "admin", true)
	trk := seedTrucker(t, "DL-700", nil, true)
	doc := seedDocument(t, nil, &trk.ID)

	w := app.do(t, http.MethodDelete, fmt.Sprintf("/api/documents/%d", doc.ID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(t, http.MethodGet, fmt.Sprintf("/api/documents/%d", doc.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var archived models.ArchivedDocument
	require.NoError(t, config.DB.Where("original_id = ?", doc.ID).First(&archived).Error)
	assert.Equal(t, doc.DocumentType, archived.DocumentType)
	assert.Equal(t, doc.FilePath, archived.FilePath)
	require.NotNil(t, archived.TruckerID)
	assert.Equal(t, trk.ID, *archived.TruckerID)
	assert.False(t, archived.ArchiveDate.IsZero())
}
