package entity

// Metadata is the result of the metadata-extraction stage. Format keeps the
// encoder's canonical name (e.g. "JPEG", "PNG"); client-facing normalization
// happens at projection time.
type Metadata struct {
	Width  int
	Height int
	Format string
}

// ThumbnailSet holds the re-encoded thumbnail variants produced by the
// thumbnail stage. Both are JPEG regardless of the input encoding.
type ThumbnailSet struct {
	Small  []byte
	Medium []byte
}
