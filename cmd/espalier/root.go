package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/adapters/figma"
	"github.com/aretw0/espalier/internal/adapters/redis"
)

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "Espalier turns raw Figma API responses into compact design context",
	Long: `Espalier fetches Figma files, prunes them down to the properties that
matter for implementing a design, and serves the result to humans (CLI, HTTP)
or AI agents (MCP).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("figma-api-key", "", "Figma personal access token (falls back to FIGMA_API_KEY)")
	rootCmd.PersistentFlags().String("figma-oauth-token", "", "Figma OAuth bearer token (falls back to FIGMA_OAUTH_TOKEN)")
	rootCmd.PersistentFlags().String("redis", "", "Optional Redis address for response caching, e.g. localhost:6379")
}

// resolveCredentials applies the CLI > environment precedence for both auth
// methods and reports where each value came from.
func resolveCredentials(cmd *cobra.Command) (apiKey, oauthToken, keySource, tokenSource string) {
	apiKey, _ = cmd.Flags().GetString("figma-api-key")
	keySource = "cli"
	if apiKey == "" {
		apiKey = os.Getenv("FIGMA_API_KEY")
		keySource = "env"
	}
	if apiKey == "" {
		keySource = "none"
	}

	oauthToken, _ = cmd.Flags().GetString("figma-oauth-token")
	tokenSource = "cli"
	if oauthToken == "" {
		oauthToken = os.Getenv("FIGMA_OAUTH_TOKEN")
		tokenSource = "env"
	}
	if oauthToken == "" {
		tokenSource = "none"
	}
	return apiKey, oauthToken, keySource, tokenSource
}

// maskKey hides the middle of a credential for log output.
func maskKey(key string) string {
	if key == "" {
		return "Not Set"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// newService wires the Figma client (with optional Redis cache) into an
// Espalier service. logCreds controls whether the resolved configuration is
// logged; stdio MCP mode keeps quiet to avoid noise on agent startup.
func newService(cmd *cobra.Command, logger *slog.Logger, logCreds bool) (*espalier.Service, error) {
	apiKey, oauthToken, keySource, tokenSource := resolveCredentials(cmd)

	if logCreds {
		logger.Info("configuration resolved",
			"figmaApiKey", maskKey(apiKey), "figmaApiKeySource", keySource,
			"figmaOauthToken", maskKey(oauthToken), "figmaOauthTokenSource", tokenSource,
		)
	}

	clientOpts := []figma.Option{
		figma.WithLogger(logger),
		figma.WithDevLogger(figma.NewDevLoggerFromEnv(logger)),
	}
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		clientOpts = append(clientOpts, figma.WithCache(redis.New(addr, "", 0)))
	}

	client, err := figma.New(apiKey, oauthToken, clientOpts...)
	if err != nil {
		return nil, err
	}

	return espalier.New(client,
		espalier.WithAssets(client),
		espalier.WithLogger(logger),
	)
}
