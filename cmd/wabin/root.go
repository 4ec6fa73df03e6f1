package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// verbose enables debug logging.
	verbose bool

	// logger is a no-op unless --verbose is set.
	logger = zap.NewNop()

	rootCmd = &cobra.Command{
		Use:   "wabin",
		Short: "Inspect WebAssembly binaries",
		Long: titleStyle.Render("wabin") + subtitleStyle.Render(" - inspect WebAssembly binaries") + `

wabin decodes modules in the WebAssembly Binary Format and prints
what it finds, one line per section.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("enable verbose logging: %w", err)
			}
			logger = l
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(inspectCmd)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
