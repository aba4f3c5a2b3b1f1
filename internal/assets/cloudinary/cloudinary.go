// Package cloudinary uploads image assets to Cloudinary instead of local
// disk. Venue image lists then carry the delivery URLs.
package cloudinary

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"festivo/internal/assets"
)

type Store struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewStore(cloudinaryURL, folder string) (*Store, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &Store{cld: cld, folder: folder}, nil
}

func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	filename = assets.NormalizeFilename(filename)

	// Public IDs carry no extension; the timestamp keeps repeated uploads
	// of the same filename from clashing.
	base := strings.TrimSuffix(filename, path.Ext(filename))
	publicID := fmt.Sprintf("%s_%d", base, time.Now().UnixNano())

	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:    s.folder,
		PublicID:  publicID,
		Overwrite: api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}
