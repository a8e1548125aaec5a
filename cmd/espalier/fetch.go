package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/presentation/tui"
	"github.com/aretw0/espalier/pkg/domain"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <fileKey>",
	Short: "Fetch and simplify a Figma file",
	Long: `Fetches a Figma file (or a single node with --node), simplifies it, and
prints the result as YAML to stdout or a file. --preview renders a design
summary to the terminal.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fileKey := args[0]
		nodeID, _ := cmd.Flags().GetString("node")
		depth, _ := cmd.Flags().GetInt("depth")
		output, _ := cmd.Flags().GetString("output")
		preview, _ := cmd.Flags().GetBool("preview")

		logger := logging.New(slog.LevelWarn)

		service, err := newService(cmd, logger, false)
		if err != nil {
			fmt.Printf("Error initializing espalier: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()

		var design *domain.SimplifiedDesign
		if nodeID != "" {
			design, err = service.FetchNodes(ctx, fileKey, []string{nodeID}, depth)
		} else {
			design, err = service.FetchFile(ctx, fileKey, depth)
		}
		if err != nil {
			fmt.Printf("Error fetching design: %v\n", err)
			os.Exit(1)
		}

		if preview || (tui.IsInteractive() && output != "") {
			render := tui.NewRenderer()
			if out, err := render(tui.SummaryMarkdown(design)); err == nil {
				fmt.Print(out)
			}
		}

		out, err := yaml.Marshal(design)
		if err != nil {
			fmt.Printf("Error encoding design: %v\n", err)
			os.Exit(1)
		}
		if output != "" {
			if err := os.WriteFile(output, out, 0o644); err != nil {
				fmt.Printf("Error writing %s: %v\n", output, err)
				os.Exit(1)
			}
			fmt.Printf("Wrote simplified design to %s\n", output)
			return
		}
		os.Stdout.Write(out)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("node", "", "Fetch a single node ID instead of the whole file")
	fetchCmd.Flags().Int("depth", 0, "Limit how many levels of the node tree to fetch (0 = all)")
	fetchCmd.Flags().StringP("output", "o", "", "Write the YAML document to a file instead of stdout")
	fetchCmd.Flags().Bool("preview", false, "Render a design summary to the terminal")
}
