package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/domain"
)

func buildMultipart(t *testing.T, fieldName, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, filename))
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func uploadImage(t *testing.T, router *chi.Mux, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, formContentType := buildMultipart(t, "file", filename, contentType, content)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images", body)
	req.Header.Set("Content-Type", formContentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestImageAPI_Upload(t *testing.T) {
	router := newTestAPI(t)

	rec := uploadImage(t, router, "Tire Front.PNG", "image/png", []byte("png-bytes"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result domain.ImageUploadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Regexp(t, `^\d+-[0-9a-f]{8}\.png$`, result.Path)
	assert.Equal(t, "/media/"+result.Path, result.URL)
}

func TestImageAPI_UploadThenServe(t *testing.T) {
	router := newTestAPI(t)
	content := []byte("fake-jpeg-content")

	rec := uploadImage(t, router, "tire.jpg", "image/jpeg", content)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result domain.ImageUploadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))

	req := httptest.NewRequest(http.MethodGet, result.URL, nil)
	serveRec := httptest.NewRecorder()
	router.ServeHTTP(serveRec, req)

	require.Equal(t, http.StatusOK, serveRec.Code)
	assert.Equal(t, "image/jpeg", serveRec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", serveRec.Header().Get("Cache-Control"))
	assert.Equal(t, content, serveRec.Body.Bytes())
}

func TestImageAPI_UploadAttachFlow(t *testing.T) {
	router := newTestAPI(t)

	rec := uploadImage(t, router, "tire.png", "image/png", []byte("png-bytes"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var uploaded domain.ImageUploadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&uploaded))

	created := createTireViaAPI(t, router,
		`{"sku":"KT-1","brand":"Goodride","imagePath":"`+uploaded.Path+`"}`)
	require.NotNil(t, created.ImagePath)
	assert.Equal(t, uploaded.Path, *created.ImagePath)
	assert.Equal(t, uploaded.URL, created.ImageURL)
}

func TestImageAPI_UploadRejectsNonImage(t *testing.T) {
	router := newTestAPI(t)

	rec := uploadImage(t, router, "report.pdf", "application/pdf", []byte("%PDF-1.4"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, domain.ErrorTypeUpload, errResp.Error)
	assert.Equal(t, "Only image uploads are accepted", errResp.Message)
	assert.Equal(t, http.StatusBadRequest, errResp.Code)
}

func TestImageAPI_UploadTooLarge(t *testing.T) {
	router := newTestAPIWithUploadLimit(t, 1)

	oversized := bytes.Repeat([]byte("x"), 2*1024*1024)
	rec := uploadImage(t, router, "huge.png", "image/png", oversized)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var errResp domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, domain.ErrorTypeUpload, errResp.Error)
	assert.Equal(t, "File too large: maximum size is 1MB", errResp.Message)
}

func TestImageAPI_UploadMissingFileField(t *testing.T) {
	router := newTestAPI(t)

	body, formContentType := buildMultipart(t, "attachment", "tire.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images", body)
	req.Header.Set("Content-Type", formContentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "Bad Request", errResp.Error)
	assert.Equal(t, "Invalid file upload: file field is required", errResp.Message)
}

func TestImageAPI_ServeMissing(t *testing.T) {
	router := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/media/1700000000000-abcd1234.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "Not Found", errResp.Error)
	assert.Equal(t, "Image not found", errResp.Message)
}
