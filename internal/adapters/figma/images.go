package figma

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/espalier/pkg/domain"
)

// maxConcurrentDownloads bounds parallel image fetches so a large request
// batch does not exhaust sockets against the CDN.
const maxConcurrentDownloads = 4

type downloadJob struct {
	url      string
	fileName string
	label    string
}

// DownloadImages renders the requested nodes and saves them under localPath.
// Individual failures are logged and skipped; the returned slice holds the
// paths that were actually written.
func (c *Client) DownloadImages(ctx context.Context, fileKey, localPath string, scale float64, requests []domain.ImageRequest) ([]string, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	urls := map[string]string{}
	for _, format := range []string{"svg", "png"} {
		var ids []string
		for _, req := range requests {
			if strings.EqualFold(req.Format, format) {
				ids = append(ids, req.NodeID)
			}
		}
		if len(ids) == 0 {
			continue
		}
		batch, err := c.GetImageURLs(ctx, fileKey, ids, format, scale)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s render urls: %w", format, err)
		}
		for id, u := range batch {
			urls[id] = u
		}
	}

	var jobs []downloadJob
	for _, req := range requests {
		imageURL, ok := urls[req.NodeID]
		if !ok || imageURL == "" {
			c.logger.Warn("no render url for node", "nodeId", req.NodeID, "format", req.Format)
			continue
		}
		jobs = append(jobs, downloadJob{url: imageURL, fileName: req.FileName, label: req.NodeID})
	}
	return c.downloadAll(ctx, localPath, jobs), nil
}

// DownloadImageFills saves the bitmaps referenced by image fills.
func (c *Client) DownloadImageFills(ctx context.Context, fileKey, localPath string, requests []domain.ImageFillRequest) ([]string, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	urls, err := c.GetImageFillURLs(ctx, fileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image fill urls: %w", err)
	}

	var jobs []downloadJob
	for _, req := range requests {
		imageURL, ok := urls[req.ImageRef]
		if !ok || imageURL == "" {
			c.logger.Warn("image ref not present in file", "nodeId", req.NodeID, "imageRef", req.ImageRef)
			continue
		}
		jobs = append(jobs, downloadJob{url: imageURL, fileName: req.FileName, label: req.ImageRef})
	}
	return c.downloadAll(ctx, localPath, jobs), nil
}

// downloadAll fetches jobs with bounded concurrency. Individual failures are
// logged and skipped; the result holds the paths that were written.
func (c *Client) downloadAll(ctx context.Context, localPath string, jobs []downloadJob) []string {
	if len(jobs) == 0 {
		return nil
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		saved []string
	)
	sem := make(chan struct{}, maxConcurrentDownloads)

	for _, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(job downloadJob) {
			defer wg.Done()
			defer func() { <-sem }()

			path, err := c.downloadFile(ctx, job.url, localPath, job.fileName)
			if err != nil {
				c.logger.Error("image download failed", "source", job.label, "err", err)
				return
			}
			mu.Lock()
			saved = append(saved, path)
			mu.Unlock()
		}(job)
	}
	wg.Wait()
	return saved
}

func (c *Client) downloadFile(ctx context.Context, imageURL, localPath, fileName string) (string, error) {
	if err := os.MkdirAll(localPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	path := filepath.Join(localPath, fileName)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
