package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixline/internal/domain/model"
)

func TestUploadAcceptsJPEG(t *testing.T) {
	store := newMemStore()
	blobs := newMemBlobs()
	publisher := &fakePublisher{}

	uploader := NewUploader(store, store, blobs, blobs, publisher)

	payload := encodeTestJPEG(t, 100, 100)
	result, status, err := uploader.Upload(context.Background(), payload, "image/jpeg", "cat.jpg")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, result.ImageID)
	assert.Equal(t, model.StatusProcessing, result.Status)

	// the record is visible, in processing, with no derived fields yet
	got, err := store.GetByID(context.Background(), result.ImageID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusProcessing, got.Status)
	assert.Equal(t, "cat.jpg", got.OriginalName)
	assert.Equal(t, "image/jpeg", got.MimeType)
	assert.Equal(t, int64(len(payload)), got.SizeBytes)
	assert.Nil(t, got.Width)
	assert.Nil(t, got.Caption)
	assert.Nil(t, got.Error)
	assert.Nil(t, got.ProcessedAt)
	assert.Nil(t, got.ProcessingMs)

	// original blob stored, id published exactly once
	assert.True(t, blobs.has(got.StoredName))
	require.Len(t, publisher.published, 1)
	assert.Equal(t, result.ImageID, publisher.published[0])
}

func TestUploadRejectsDisallowedContentType(t *testing.T) {
	store := newMemStore()
	blobs := newMemBlobs()
	publisher := &fakePublisher{}

	uploader := NewUploader(store, store, blobs, blobs, publisher)

	_, status, err := uploader.Upload(context.Background(), []byte("hello"), "text/plain", "note.txt")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, store.order)
	assert.Empty(t, publisher.published)
}

func TestUploadRejectsEmptyPayload(t *testing.T) {
	store := newMemStore()
	blobs := newMemBlobs()
	publisher := &fakePublisher{}

	uploader := NewUploader(store, store, blobs, blobs, publisher)

	_, status, err := uploader.Upload(context.Background(), nil, "image/png", "empty.png")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, store.order)
	assert.Empty(t, publisher.published)
}

func TestUploadAcceptsUndecodablePayloadWithAllowedType(t *testing.T) {
	store := newMemStore()
	blobs := newMemBlobs()
	publisher := &fakePublisher{}

	uploader := NewUploader(store, store, blobs, blobs, publisher)

	// the sniff logs the mismatch but acceptance must still succeed; the
	// pipeline run is where this payload fails
	result, status, err := uploader.Upload(context.Background(),
		[]byte("not really a jpeg"), "image/jpeg", "broken.jpg")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, model.StatusProcessing, result.Status)
	require.Len(t, publisher.published, 1)
}

func TestUploadCompensatesWhenPublishFails(t *testing.T) {
	store := newMemStore()
	blobs := newMemBlobs()
	publisher := &fakePublisher{err: errors.New("broker down")}

	uploader := NewUploader(store, store, blobs, blobs, publisher)

	_, status, err := uploader.Upload(context.Background(),
		encodeTestJPEG(t, 10, 10), "image/jpeg", "cat.jpg")

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)

	// neither the record nor the blob survives a failed submit
	assert.Empty(t, store.images)
	assert.Empty(t, blobs.objects)
}

func TestUploadCompensatesWhenInsertFails(t *testing.T) {
	store := newMemStore()
	store.insertErr = errors.New("db down")
	blobs := newMemBlobs()
	publisher := &fakePublisher{}

	uploader := NewUploader(store, store, blobs, blobs, publisher)

	_, status, err := uploader.Upload(context.Background(),
		encodeTestJPEG(t, 10, 10), "image/jpeg", "cat.jpg")

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Empty(t, blobs.objects)
	assert.Empty(t, publisher.published)
}
