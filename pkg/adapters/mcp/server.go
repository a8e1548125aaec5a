package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/adapters/figma"
	"github.com/aretw0/espalier/pkg/domain"
)

// Server exposes the Espalier service as an MCP server, so coding agents can
// pull simplified design context and image assets over the protocol.
type Server struct {
	service   *espalier.Service
	logger    *slog.Logger
	mcpServer *server.MCPServer
	devLog    *figma.DevLogger
}

// NewServer creates a new MCP Server instance.
func NewServer(service *espalier.Service, logger *slog.Logger) *Server {
	s := &Server{
		service:   service,
		logger:    logger,
		mcpServer: server.NewMCPServer("espalier-mcp", strings.TrimSpace(espalier.Version)),
		devLog:    figma.NewDevLoggerFromEnv(logger),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: get_figma_data
	dataTool := mcp.NewTool("get_figma_data",
		mcp.WithDescription("Fetches Figma file data or specific node data and returns it as YAML."),
		mcp.WithString("fileKey", mcp.Required(), mcp.Description("The Figma file key.")),
		mcp.WithString("nodeId", mcp.Description("Optional Figma node ID to fetch instead of the whole file.")),
		mcp.WithNumber("depth", mcp.Description("Optional tree depth limit for the fetch.")),
	)
	s.mcpServer.AddTool(dataTool, s.handleGetFigmaData)

	// TOOL: download_figma_images
	imagesTool := mcp.NewTool("download_figma_images",
		mcp.WithDescription("Downloads rendered images of nodes or actual image fills from Figma."),
		mcp.WithString("fileKey", mcp.Required(), mcp.Description("The Figma file key.")),
		mcp.WithArray("nodes", mcp.Required(),
			mcp.Description("Image requests. Each entry has nodeId, fileName, and optionally imageRef for image fills.")),
		mcp.WithNumber("scale", mcp.Description("Image scale factor for PNG renders (default 2).")),
		mcp.WithString("localPath", mcp.Required(), mcp.Description("Local directory path to save images into.")),
	)
	s.mcpServer.AddTool(imagesTool, s.handleDownloadImages)
}

func (s *Server) handleGetFigmaData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	fileKey, _ := args["fileKey"].(string)
	if fileKey == "" {
		return mcp.NewToolResultError("fileKey is required"), nil
	}
	nodeID, _ := args["nodeId"].(string)
	depth := 0
	if d, ok := args["depth"].(float64); ok {
		depth = int(d)
	}

	s.logger.Info("get_figma_data", "fileKey", fileKey, "nodeId", nodeID, "depth", depth)

	var design *domain.SimplifiedDesign
	var err error
	if nodeID != "" {
		design, err = s.service.FetchNodes(ctx, fileKey, []string{nodeID}, depth)
	} else {
		design, err = s.service.FetchFile(ctx, fileKey, depth)
	}
	if err != nil {
		s.logger.Error("get_figma_data failed", "fileKey", fileKey, "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch design data: %v", err)), nil
	}

	out, err := yaml.Marshal(design)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode design data: %v", err)), nil
	}
	s.devLog.Dump(fileKey+"_simplified.yml", design)
	return mcp.NewToolResultText(string(out)), nil
}

type imageNodeArg struct {
	NodeID   string `mapstructure:"nodeId"`
	FileName string `mapstructure:"fileName"`
	ImageRef string `mapstructure:"imageRef"`
}

func (s *Server) handleDownloadImages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	fileKey, _ := args["fileKey"].(string)
	localPath, _ := args["localPath"].(string)
	if fileKey == "" || localPath == "" {
		return mcp.NewToolResultError("fileKey and localPath are required"), nil
	}
	scale := 2.0
	if v, ok := args["scale"].(float64); ok && v > 0 {
		scale = v
	}

	var nodes []imageNodeArg
	if err := mapstructure.Decode(args["nodes"], &nodes); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid nodes argument: %v", err)), nil
	}
	if len(nodes) == 0 {
		return mcp.NewToolResultText("No valid image requests to process."), nil
	}

	var fills []domain.ImageFillRequest
	var renders []domain.ImageRequest
	for _, node := range nodes {
		if node.ImageRef != "" {
			fills = append(fills, domain.ImageFillRequest{
				NodeID:   node.NodeID,
				FileName: node.FileName,
				ImageRef: node.ImageRef,
			})
			continue
		}
		format := strings.TrimPrefix(strings.ToLower(filepath.Ext(node.FileName)), ".")
		if format != "png" && format != "svg" {
			s.logger.Warn("unsupported image extension, defaulting to png", "fileName", node.FileName)
			format = "png"
		}
		renders = append(renders, domain.ImageRequest{
			NodeID:   node.NodeID,
			FileName: node.FileName,
			Format:   format,
		})
	}

	var saved []string
	var failures []string
	if len(fills) > 0 {
		paths, err := s.service.DownloadImageFills(ctx, fileKey, localPath, fills)
		if err != nil {
			failures = append(failures, err.Error())
		}
		saved = append(saved, paths...)
	}
	if len(renders) > 0 {
		paths, err := s.service.DownloadImages(ctx, fileKey, localPath, scale, renders)
		if err != nil {
			failures = append(failures, err.Error())
		}
		saved = append(saved, paths...)
	}

	if len(failures) > 0 {
		summary := strings.Join(failures, "; ")
		if len(saved) > 0 {
			return mcp.NewToolResultError(fmt.Sprintf("completed with errors. Downloaded: %v. Errors: %s", saved, summary)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("all image downloads failed: %s", summary)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully downloaded images: %v", saved)), nil
}
