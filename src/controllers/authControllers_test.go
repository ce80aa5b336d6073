package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FinDocs/FinDocs-Backend/src/middleware"
	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	router, _, _ := newTestRouter(t, "")

	rec := postJSON(t, router, "/auth/register", gin.H{
		"name":     "",
		"email":    "not-an-email",
		"password": "123",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 3)
	assert.Equal(t, "Name is required", body.Errors[0].Msg)
	assert.Equal(t, "Valid email is required", body.Errors[1].Msg)
	assert.Equal(t, "Password must be at least 6 characters long", body.Errors[2].Msg)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, _, _ := newTestRouter(t, "")

	payload := gin.H{"name": "Jean", "email": "jean@example.com", "password": "secret123"}
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/auth/register", payload).Code)

	rec := postJSON(t, router, "/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"User already exists"}]}`, rec.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	router, _, _ := newTestRouter(t, "")

	require.Equal(t, http.StatusCreated, postJSON(t, router, "/auth/register", gin.H{
		"name": "Jean", "email": "jean@example.com", "password": "secret123",
	}).Code)

	rec := postJSON(t, router, "/auth/login", gin.H{
		"email": "jean@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Invalid credentials"}]}`, rec.Body.String())
}

// TestDocumentIntakeLifecycle walks the main flow end to end: register, log
// in, create a folder, queue a job in it and complete it. The completion
// timestamp must be stamped on the first completing update and survive
// later updates unchanged.
func TestDocumentIntakeLifecycle(t *testing.T) {
	router, db, _ := newTestRouter(t, "")

	rec := postJSON(t, router, "/auth/register", gin.H{
		"name": "Jean Dupont", "email": "jean@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	userId, _ := registered["id"].(string)
	require.NotEmpty(t, userId)
	assert.NotContains(t, registered, "password")

	rec = postJSON(t, router, "/auth/login", gin.H{
		"email": "jean@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.NotEmpty(t, login["token"])

	// Act as the freshly registered user for the protected routes.
	middleware.SetIdentityResolver(middleware.MockIdentity(userId))

	rec = postJSON(t, router, "/folders/", gin.H{"name": "Q1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var folder map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &folder))
	folderId, _ := folder["id"].(string)
	require.NotEmpty(t, folderId)
	assert.Equal(t, "pending", folder["status"])
	assert.Equal(t, float64(0), folder["fileCount"])

	rec = postJSON(t, router, "/jobs/folder/"+folderId, gin.H{"fileName": "x.pdf"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var job map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	jobId, _ := job["id"].(string)
	require.NotEmpty(t, jobId)
	assert.Equal(t, "queued", job["status"])
	assert.Nil(t, job["completedAt"])

	req := httptest.NewRequest(http.MethodPut, "/jobs/"+jobId, jsonBody(t, gin.H{"status": "completed"}))
	req.Header.Set("Content-Type", "application/json")
	put := httptest.NewRecorder()
	router.ServeHTTP(put, req)
	require.Equal(t, http.StatusOK, put.Code)

	var stored models.ProcessingJobModel
	require.NoError(t, db.First(&stored, "id = ?", jobId).Error)
	require.NotNil(t, stored.CompletedAt)
	firstCompleted := *stored.CompletedAt

	time.Sleep(10 * time.Millisecond)

	req = httptest.NewRequest(http.MethodPut, "/jobs/"+jobId, jsonBody(t, gin.H{"status": "completed"}))
	req.Header.Set("Content-Type", "application/json")
	put = httptest.NewRecorder()
	router.ServeHTTP(put, req)
	require.Equal(t, http.StatusOK, put.Code)

	require.NoError(t, db.First(&stored, "id = ?", jobId).Error)
	require.NotNil(t, stored.CompletedAt)
	assert.True(t, stored.CompletedAt.Equal(firstCompleted))
}
