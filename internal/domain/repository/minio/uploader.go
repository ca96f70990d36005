package minio

import "context"

type Uploader interface {
	// UploadObject stores the bytes under the given key with the given
	// content type and returns the number of bytes written.
	UploadObject(ctx context.Context, key, contentType string, data []byte) (int64, error)
}
