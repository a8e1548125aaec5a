package ports

import "context"

// DesignSource fetches raw design documents and rendered asset URLs from the
// upstream design API. Implementations return the decoded JSON body as-is;
// simplification happens in the core, not in the adapter.
type DesignSource interface {
	// GetFile retrieves a whole file document. depth <= 0 means the API
	// default (the full tree).
	GetFile(ctx context.Context, fileKey string, depth int) (map[string]any, error)

	// GetNodes retrieves a subset of nodes from a file.
	GetNodes(ctx context.Context, fileKey string, nodeIDs []string, depth int) (map[string]any, error)

	// GetImageURLs renders the given nodes and returns nodeID -> temporary
	// download URL. format is "png" or "svg"; scale applies to png only.
	GetImageURLs(ctx context.Context, fileKey string, nodeIDs []string, format string, scale float64) (map[string]string, error)

	// GetImageFillURLs returns imageRef -> download URL for every image
	// fill used in the file.
	GetImageFillURLs(ctx context.Context, fileKey string) (map[string]string, error)
}
