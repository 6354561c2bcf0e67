package storage

import "io"

// ImageGateway stores uploaded images and maps them to public references
type ImageGateway interface {
	// Save writes content under name and returns its public reference
	Save(name string, content io.Reader) (string, error)
	// Manages reports whether a reference belongs to this gateway
	Manages(reference string) bool
	// Delete removes the file behind a reference returned by Save
	Delete(reference string) error
}
