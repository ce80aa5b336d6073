package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, router http.Handler, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadFileStoresMetadataAndContent(t *testing.T) {
	router, db, user := newTestRouter(t, "")

	content := []byte("%PDF-1.4 fake statement")
	rec := multipartUpload(t, router, "releve-janvier.pdf", "application/pdf", content)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "releve-janvier.pdf", body["name"])
	assert.Equal(t, "application/pdf", body["type"])
	assert.Equal(t, float64(len(content)), body["size"])
	assert.Equal(t, "uploaded", body["status"])
	assert.Equal(t, user.ID, body["userId"])
	assert.NotContains(t, body, "content")

	var stored models.UploadedFileModel
	require.NoError(t, db.First(&stored, "id = ?", body["id"]).Error)
	assert.Equal(t, content, stored.Content)
}

func TestUploadFileMissingPart(t *testing.T) {
	router, _, _ := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/upload/", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"No file uploaded"}`, rec.Body.String())
}

func TestGetAllUploadedFilesOmitsContent(t *testing.T) {
	router, _, _ := newTestRouter(t, "")

	rec := multipartUpload(t, router, "releve.pdf", "application/pdf", []byte("data"))
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/upload/", nil)
	list := httptest.NewRecorder()
	router.ServeHTTP(list, req)

	require.Equal(t, http.StatusOK, list.Code)

	var files []map[string]interface{}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "releve.pdf", files[0]["name"])
	assert.NotContains(t, files[0], "content")
}
