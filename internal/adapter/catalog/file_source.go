package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/port"
)

// FileSource reads the catalog JSON array from a local file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	return decodeProducts(f)
}

var _ port.ProductSource = (*FileSource)(nil)
