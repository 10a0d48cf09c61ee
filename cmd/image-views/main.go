package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-views/internal/config"
	"github.com/ironsheep/image-views/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for results and MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Debug() {
		log.Printf("image-views v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var outDir string
	var workers int

	rootCmd := &cobra.Command{
		Use:           "image-views",
		Long:          `Derive the inverted and grayscale views of images and report their average pixel values`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	showCmd := &cobra.Command{
		Use:   "show <path> [--out <dir>]",
		Short: "Print the average pixel values of one image",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return show(c.OutOrStdout(), args[0], resolveOutDir(outDir, cfg))
		},
	}
	showCmd.Flags().StringVar(&outDir, "out", "", "Directory to write the derived views to (default $"+config.EnvOutputDir+")")

	batchCmd := &cobra.Command{
		Use:   "batch <dir> [--out <dir>] [--workers <n>]",
		Short: "Process every image under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runBatch(c.OutOrStdout(), args[0], resolveOutDir(outDir, cfg), workers, cfg.Debug())
		},
	}
	batchCmd.Flags().StringVar(&outDir, "out", "", "Directory to write the derived views to (default $"+config.EnvOutputDir+")")
	batchCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Number of images processed at once")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if cfg.Debug() {
				log.Printf("Starting MCP server %s", server.ServerVersion)
			}
			if err := server.New().Run(); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			w := c.OutOrStdout()
			fmt.Fprintf(w, "image-views %s\n", Version)
			fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
		},
	}

	rootCmd.AddCommand(showCmd, batchCmd, serveCmd, versionCmd)
	return rootCmd
}

// resolveOutDir prefers the --out flag over the configured output directory.
func resolveOutDir(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.OutputDir
}
