package service

import (
	"fmt"
	"os"
	"regexp"
)

var imageExtPattern = regexp.MustCompile(`(?i)\.(jpe?g|png|gif|webp|avif|svg)$`)

type PhotoLister struct {
	dir string
}

func NewPhotoLister(dir string) *PhotoLister {
	return &PhotoLister{dir: dir}
}

// List returns image file names in the photo directory, sorted by name.
func (l *PhotoLister) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read photos dir: %w", err)
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !imageExtPattern.MatchString(e.Name()) {
			continue
		}
		images = append(images, e.Name())
	}
	return images, nil
}
