package quiltscan

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Names of the image directories created under the output root.
const (
	ScanDir = "scanimg"
	CropDir = "cropimg"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 95

// Store saves the captured and the cropped images under Dir.
type Store struct {
	Dir     string
	Quality int
}

// Prepare creates the image directories in case they do not exist.
func (s *Store) Prepare() error {
	for _, sub := range []string{ScanDir, CropDir} {
		if err := os.MkdirAll(filepath.Join(s.Dir, sub), 0755); err != nil {
			return fmt.Errorf("unable to create the %s directory: %w", sub, err)
		}
	}
	return nil
}

// ScanPath returns the path of the raw frame saved for index.
func (s *Store) ScanPath(index int) string {
	return s.path(ScanDir, index)
}

// CropPath returns the path of the cropped image saved for index.
func (s *Store) CropPath(index int) string {
	return s.path(CropDir, index)
}

func (s *Store) path(sub string, index int) string {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	return fmt.Sprintf("%s/%s/%04d.jpg", dir, sub, index)
}

// Save encodes img as JPEG into path, replacing any existing file.
func (s *Store) Save(path string, img image.Image) error {
	quality := s.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}
	if err := imaging.Save(img, filepath.FromSlash(path), imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("unable to save %s: %w", path, err)
	}
	return nil
}
