package ports

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
)

// AssetDownloader saves rendered nodes and image fills to local files.
// Implementations skip individual failures and return the paths written.
type AssetDownloader interface {
	DownloadImages(ctx context.Context, fileKey, localPath string, scale float64, requests []domain.ImageRequest) ([]string, error)
	DownloadImageFills(ctx context.Context, fileKey, localPath string, requests []domain.ImageFillRequest) ([]string, error)
}
