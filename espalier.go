package espalier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/observability"
	"github.com/aretw0/espalier/internal/simplifier"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// Version identifies the library release.
const Version = "0.1.0"

// Service is the high-level entry point for the Espalier library. It ties a
// design source to the simplifier and exposes the fetch-and-simplify
// operations the adapters build on.
type Service struct {
	source     ports.DesignSource
	assets     ports.AssetDownloader
	logger     *slog.Logger
	maxDepth   int
	parserOpts []simplifier.Option
	parser     *simplifier.Parser
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithAssets injects an asset downloader, enabling the image operations.
func WithAssets(assets ports.AssetDownloader) Option {
	return func(s *Service) {
		s.assets = assets
	}
}

// WithLogger sets a custom structured logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMaxDepth overrides the simplifier's recursion depth guard.
func WithMaxDepth(depth int) Option {
	return func(s *Service) {
		s.maxDepth = depth
	}
}

// New initializes a Service around the given design source.
func New(source ports.DesignSource, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("a design source is required")
	}
	s := &Service{
		source:   source,
		logger:   logging.NewNop(),
		maxDepth: simplifier.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.parser = simplifier.NewParser(
		simplifier.WithLogger(s.logger),
		simplifier.WithMaxDepth(s.maxDepth),
	)
	return s, nil
}

// FetchFile retrieves a whole file and simplifies it. depth <= 0 fetches the
// full tree.
func (s *Service) FetchFile(ctx context.Context, fileKey string, depth int) (*domain.SimplifiedDesign, error) {
	raw, err := s.source.GetFile(ctx, fileKey, depth)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file %s: %w", fileKey, err)
	}
	return s.Simplify(raw), nil
}

// FetchNodes retrieves a node subset and simplifies it.
func (s *Service) FetchNodes(ctx context.Context, fileKey string, nodeIDs []string, depth int) (*domain.SimplifiedDesign, error) {
	raw, err := s.source.GetNodes(ctx, fileKey, nodeIDs, depth)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nodes from %s: %w", fileKey, err)
	}
	return s.Simplify(raw), nil
}

// Simplify runs the simplifier over an already-decoded raw document.
func (s *Service) Simplify(raw map[string]any) *domain.SimplifiedDesign {
	start := time.Now()
	design := s.parser.Parse(raw)
	observability.ObserveParse(time.Since(start), countNodes(design.Nodes))
	return design
}

func countNodes(nodes []*domain.SimplifiedNode) int {
	total := 0
	for _, node := range nodes {
		total += 1 + countNodes(node.Children)
	}
	return total
}

// DownloadImages renders nodes as PNG or SVG files under localPath.
func (s *Service) DownloadImages(ctx context.Context, fileKey, localPath string, scale float64, requests []domain.ImageRequest) ([]string, error) {
	if s.assets == nil {
		return nil, fmt.Errorf("no asset downloader configured")
	}
	return s.assets.DownloadImages(ctx, fileKey, localPath, scale, requests)
}

// DownloadImageFills saves the bitmaps behind image fills under localPath.
func (s *Service) DownloadImageFills(ctx context.Context, fileKey, localPath string, requests []domain.ImageFillRequest) ([]string, error) {
	if s.assets == nil {
		return nil, fmt.Errorf("no asset downloader configured")
	}
	return s.assets.DownloadImageFills(ctx, fileKey, localPath, requests)
}
