package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"sync"

	"pixline/internal/domain/model"
	databaseRepository "pixline/internal/domain/repository/database"
	minioRepository "pixline/internal/domain/repository/minio"
)

// memStore is an in-memory stand-in for the mongo-backed image repository.
// It mimics the same guarantees: unique ids on insert and an atomic terminal
// update that only matches records still in processing.
type memStore struct {
	mu     sync.Mutex
	images map[string]*model.Image
	order  []string

	insertErr   error
	finalizeErr error
}

func newMemStore() *memStore {
	return &memStore{images: map[string]*model.Image{}}
}

func (s *memStore) Insert(_ context.Context, image *model.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.insertErr != nil {
		return s.insertErr
	}
	if _, ok := s.images[image.ID]; ok {
		return errors.New("image id already exists")
	}

	clone := *image
	s.images[image.ID] = &clone
	s.order = append(s.order, image.ID)

	return nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*model.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.images[id]
	if !ok {
		return nil, databaseRepository.NotFoundError{ID: id}
	}

	clone := *stored

	return &clone, nil
}

func (s *memStore) ListByCreation(_ context.Context) ([]model.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// newest first
	images := make([]model.Image, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		images = append(images, *s.images[s.order[i]])
	}

	return images, nil
}

func (s *memStore) MarkSuccess(_ context.Context, id string, update databaseRepository.SuccessUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalizeErr != nil {
		return false, s.finalizeErr
	}

	stored, ok := s.images[id]
	if !ok || stored.Status != model.StatusProcessing {
		return false, nil
	}

	stored.Status = model.StatusSuccess
	stored.Width = &update.Width
	stored.Height = &update.Height
	stored.Format = &update.Format
	stored.Caption = &update.Caption
	stored.Thumbnails = update.Thumbnails
	stored.Error = nil
	processedAt := update.ProcessedAt
	stored.ProcessedAt = &processedAt
	processingMs := update.ProcessingMs
	stored.ProcessingMs = &processingMs

	return true, nil
}

func (s *memStore) MarkFailure(_ context.Context, id string, update databaseRepository.FailureUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalizeErr != nil {
		return false, s.finalizeErr
	}

	stored, ok := s.images[id]
	if !ok || stored.Status != model.StatusProcessing {
		return false, nil
	}

	stored.Status = model.StatusFailed
	errMsg := update.Error
	stored.Error = &errMsg
	processedAt := update.ProcessedAt
	stored.ProcessedAt = &processedAt
	processingMs := update.ProcessingMs
	stored.ProcessingMs = &processingMs

	return true, nil
}

func (s *memStore) RemoveByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.images, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}

	return nil
}

// memBlobs is an in-memory blob store.
type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte

	uploadErrKey string // uploads to this key fail
	uploadErr    error
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: map[string][]byte{}}
}

func (b *memBlobs) UploadObject(_ context.Context, key, _ string, data []byte) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.uploadErr != nil && key == b.uploadErrKey {
		return 0, b.uploadErr
	}

	b.objects[key] = append([]byte(nil), data...)

	return int64(len(data)), nil
}

func (b *memBlobs) GetObject(_ context.Context, key string) (io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.objects[key]
	if !ok {
		return nil, minioRepository.MissingObjectError{Key: key}
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *memBlobs) StatObject(_ context.Context, key string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.objects[key]
	if !ok {
		return 0, minioRepository.MissingObjectError{Key: key}
	}

	return int64(len(data)), nil
}

func (b *memBlobs) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.objects, key)

	return nil
}

func (b *memBlobs) has(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.objects[key]

	return ok
}

type fakePublisher struct {
	mu        sync.Mutex
	published []string
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, message)

	return nil
}

type fakeDescriber struct {
	caption string
	err     error
	calls   int
}

func (d *fakeDescriber) Describe(_ context.Context, _ image.Image) (string, error) {
	d.calls++
	if d.err != nil {
		return "", d.err
	}

	return d.caption, nil
}

type fakeCounter struct {
	counts databaseRepository.Counts
	err    error
}

func (c *fakeCounter) Counts(_ context.Context) (databaseRepository.Counts, error) {
	if c.err != nil {
		return databaseRepository.Counts{}, c.err
	}

	return c.counts, nil
}
