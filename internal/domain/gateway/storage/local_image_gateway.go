package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// storedName matches the "<unix millis>-<sanitized name>" files Save is given
var storedName = regexp.MustCompile(`^\d+-[A-Za-z0-9._-]+$`)

// LocalImageGateway keeps images in a server-local directory that is served
// statically under PublicPath.
type LocalImageGateway struct {
	Dir        string
	PublicPath string
}

var _ ImageGateway = (*LocalImageGateway)(nil)

func NewLocalImageGateway(dir string, publicPath string) (*LocalImageGateway, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images directory %s: %w", dir, err)
	}
	return &LocalImageGateway{
		Dir:        dir,
		PublicPath: "/" + strings.Trim(publicPath, "/"),
	}, nil
}

func (gateway *LocalImageGateway) Save(name string, content io.Reader) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid image name %q", name)
	}

	file, err := os.OpenFile(filepath.Join(gateway.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return "", err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(file.Name())
		return "", err
	}

	return path.Join(gateway.PublicPath, name), nil
}

// Manages reports whether reference points into PublicPath
func (gateway *LocalImageGateway) Manages(reference string) bool {
	return strings.HasPrefix(reference, gateway.PublicPath+"/")
}

func (gateway *LocalImageGateway) Delete(reference string) error {
	if !gateway.Manages(reference) {
		return fmt.Errorf("reference %q is not under %s", reference, gateway.PublicPath)
	}

	name := strings.TrimPrefix(reference, gateway.PublicPath+"/")
	if !storedName.MatchString(name) || name != filepath.Base(name) {
		return fmt.Errorf("invalid image reference %q", reference)
	}

	err := os.Remove(filepath.Join(gateway.Dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
