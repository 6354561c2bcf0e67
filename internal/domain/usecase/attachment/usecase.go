package attachment

import "mime/multipart"

type UseCase interface {
	// Store validates the files of a request and saves the single accepted image.
	// It returns "" when the request carries no file.
	Store(files map[string][]*multipart.FileHeader, acceptedFields ...string) (string, error)
	// Owns reports whether a reference points at a file Store manages
	Owns(reference string) bool
	// Remove deletes a stored image, logging failures.
	// References Store does not manage are left alone.
	Remove(reference string)
}
