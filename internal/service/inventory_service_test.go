package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/domain"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/repository"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/service"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/storage"
)

func createTestInventoryService(t *testing.T) (*service.InventoryService, storage.Storage) {
	svc, store, _ := createTestInventoryServiceWithDB(t)
	return svc, store
}

func createTestInventoryServiceWithDB(t *testing.T) (*service.InventoryService, storage.Storage, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&domain.TireRecord{}))

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	repo := repository.NewTireRepository(db)
	svc := service.NewInventoryService(repo, store, zap.NewNop())
	return svc, store, db
}

func decodeCreateRequest(t *testing.T, payload string) *domain.CreateTireRequest {
	var req domain.CreateTireRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	return &req
}

func TestInventoryService_Create_Defaults(t *testing.T) {
	svc, _ := createTestInventoryService(t)
	ctx := context.Background()

	tire, err := svc.Create(ctx, decodeCreateRequest(t, `{"sku":"T-100","brand":"Acme"}`))
	require.NoError(t, err)

	assert.Equal(t, 1, tire.Quantity, "omitted quantity should default to 1")
	assert.Equal(t, "New", tire.Condition, "omitted condition should default to New")
	assert.Equal(t, float64(0), tire.Price)
	assert.NotEqual(t, uuid.Nil, tire.ID)
	assert.NotEmpty(t, tire.CreatedAt)
}

func TestInventoryService_Create_BlankQuantityIsZero(t *testing.T) {
	svc, _ := createTestInventoryService(t)
	ctx := context.Background()

	tire, err := svc.Create(ctx, decodeCreateRequest(t, `{"sku":"T-100","quantity":""}`))
	require.NoError(t, err)

	assert.Equal(t, 0, tire.Quantity, "a blank submitted quantity coerces to 0, not the default")
}

func TestInventoryService_Create_StringNumerics(t *testing.T) {
	svc, _ := createTestInventoryService(t)
	ctx := context.Background()

	payload := `{"sku":"T-100","brand":"Acme","price":"49.99","quantity":"4"}`
	tire, err := svc.Create(ctx, decodeCreateRequest(t, payload))
	require.NoError(t, err)

	assert.Equal(t, 49.99, tire.Price)
	assert.Equal(t, 4, tire.Quantity)

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalItems)
	assert.Equal(t, int64(1), stats.SKUCount)
}

func TestInventoryService_GetByID_NotFound(t *testing.T) {
	svc, _ := createTestInventoryService(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, service.ErrTireNotFound))
}

func TestInventoryService_Update_OverwritesAndBumpsTimestamp(t *testing.T) {
	svc, _, db := createTestInventoryServiceWithDB(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, decodeCreateRequest(t, `{"sku":"T-100","brand":"Acme","model":"Roadmaster","price":49.99,"quantity":4,"notes":"keep me"}`))
	require.NoError(t, err)

	var before domain.TireRecord
	require.NoError(t, db.First(&before, "id = ?", created.ID).Error)

	time.Sleep(20 * time.Millisecond)

	var req domain.UpdateTireRequest
	require.NoError(t, json.Unmarshal([]byte(`{"sku":"T-100","brand":"Acme","model":"Roadmaster","price":"59.99","quantity":4,"notes":"keep me"}`), &req))

	updated, err := svc.Update(ctx, created.ID, &req)
	require.NoError(t, err)

	assert.Equal(t, 59.99, updated.Price)
	assert.Equal(t, "Acme", updated.Brand, "unedited fields should be preserved")
	assert.Equal(t, "keep me", updated.Notes)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "createdAt should not change on update")

	var after domain.TireRecord
	require.NoError(t, db.First(&after, "id = ?", created.ID).Error)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updatedAt should strictly increase")
	assert.Equal(t, before.CreatedAt.Unix(), after.CreatedAt.Unix())
}

func TestInventoryService_Update_OmittedFieldsOverwriteToZero(t *testing.T) {
	svc, _ := createTestInventoryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, decodeCreateRequest(t, `{"sku":"T-100","brand":"Acme","quantity":4,"notes":"old"}`))
	require.NoError(t, err)

	// A full overwrite: everything missing from the payload is written back
	// as its zero value, including quantity.
	var req domain.UpdateTireRequest
	require.NoError(t, json.Unmarshal([]byte(`{"sku":"T-100"}`), &req))

	updated, err := svc.Update(ctx, created.ID, &req)
	require.NoError(t, err)

	assert.Equal(t, 0, updated.Quantity)
	assert.Empty(t, updated.Brand)
	assert.Empty(t, updated.Notes)
}

func TestInventoryService_Update_NotFound(t *testing.T) {
	svc, _ := createTestInventoryService(t)

	var req domain.UpdateTireRequest
	_, err := svc.Update(context.Background(), uuid.New(), &req)
	assert.True(t, errors.Is(err, service.ErrTireNotFound))
}

func TestInventoryService_Update_ReplacingImageDeletesOldBlob(t *testing.T) {
	svc, store := createTestInventoryService(t)
	ctx := context.Background()

	oldUpload, err := svc.UploadImage(ctx, "front.png", "image/png", bytes.NewReader([]byte("old-bytes")))
	require.NoError(t, err)
	newUpload, err := svc.UploadImage(ctx, "side.png", "image/png", bytes.NewReader([]byte("new-bytes")))
	require.NoError(t, err)

	created, err := svc.Create(ctx, &domain.CreateTireRequest{SKU: "T-100", ImagePath: &oldUpload.Path})
	require.NoError(t, err)

	req := &domain.UpdateTireRequest{SKU: "T-100", ImagePath: &newUpload.Path}
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	require.NotNil(t, updated.ImagePath)
	assert.Equal(t, newUpload.Path, *updated.ImagePath)

	_, err = store.Download(ctx, oldUpload.Path)
	assert.Error(t, err, "replaced blob should be deleted from storage")

	reader, err := store.Download(ctx, newUpload.Path)
	require.NoError(t, err)
	reader.Close()
}

func TestInventoryService_Delete_RemovesRecordAndBlob(t *testing.T) {
	svc, store := createTestInventoryService(t)
	ctx := context.Background()

	upload, err := svc.UploadImage(ctx, "tread.jpg", "image/jpeg", bytes.NewReader([]byte("jpeg-bytes")))
	require.NoError(t, err)

	keep, err := svc.Create(ctx, decodeCreateRequest(t, `{"sku":"T-100","quantity":3}`))
	require.NoError(t, err)
	remove, err := svc.Create(ctx, &domain.CreateTireRequest{SKU: "T-200", Quantity: flexIntPtr(5), ImagePath: &upload.Path})
	require.NoError(t, err)

	before, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), before.TotalItems)
	assert.Equal(t, int64(2), before.SKUCount)

	require.NoError(t, svc.Delete(ctx, remove.ID))

	_, err = svc.GetByID(ctx, remove.ID)
	assert.True(t, errors.Is(err, service.ErrTireNotFound))

	_, err = svc.GetByID(ctx, keep.ID)
	assert.NoError(t, err, "only the targeted record should be removed")

	after, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), after.TotalItems)
	assert.Equal(t, int64(1), after.SKUCount)

	_, err = store.Download(ctx, upload.Path)
	assert.Error(t, err, "blob should be deleted with its record")
}

func TestInventoryService_Delete_NotFound(t *testing.T) {
	svc, _ := createTestInventoryService(t)

	err := svc.Delete(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, service.ErrTireNotFound))
}

func TestInventoryService_UploadImage(t *testing.T) {
	svc, _ := createTestInventoryService(t)
	ctx := context.Background()

	resp, err := svc.UploadImage(ctx, "Photo.PNG", "image/png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{8}\.png$`), resp.Path,
		"blob name should be timestamp, random suffix, and the lowercased original extension")
	assert.Equal(t, "/media/"+resp.Path, resp.URL)
}

func TestInventoryService_UploadImage_RejectsNonImages(t *testing.T) {
	svc, _ := createTestInventoryService(t)

	_, err := svc.UploadImage(context.Background(), "report.pdf", "application/pdf", strings.NewReader("%PDF"))
	assert.True(t, errors.Is(err, service.ErrUnsupportedImageType))
}

func TestInventoryService_ExportCSV(t *testing.T) {
	svc, _ := createTestInventoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, decodeCreateRequest(t, `{"sku":"T-100","brand":"Acme","price":"49.99","quantity":4,"notes":"He said \"ok\""}`))
	require.NoError(t, err)

	data, err := svc.ExportCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"sku","brand","model","size","ply","price","condition","quantity","notes","image_path"`, lines[0])
	assert.Contains(t, lines[1], `"T-100"`)
	assert.Contains(t, lines[1], `"49.99"`)
	assert.Contains(t, lines[1], `"He said ""ok"""`)
}

func TestInventoryService_List_ImageURLs(t *testing.T) {
	svc, _ := createTestInventoryService(t)
	ctx := context.Background()

	upload, err := svc.UploadImage(ctx, "tire.webp", "image/webp", bytes.NewReader([]byte("webp-bytes")))
	require.NoError(t, err)

	_, err = svc.Create(ctx, &domain.CreateTireRequest{SKU: "T-100", ImagePath: &upload.Path})
	require.NoError(t, err)
	_, err = svc.Create(ctx, decodeCreateRequest(t, `{"sku":"T-200"}`))
	require.NoError(t, err)

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, int64(2), list.Total)

	for _, dto := range list.Data {
		if dto.SKU == "T-100" {
			assert.Equal(t, "/media/"+upload.Path, dto.ImageURL)
		} else {
			assert.Empty(t, dto.ImageURL, "records without an image should carry no URL")
		}
	}
}

func flexIntPtr(v int) *domain.FlexInt {
	f := domain.FlexInt(v)
	return &f
}
