package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"go-storefront/browse"
	"go-storefront/source"
	"go-storefront/urlstate"
)

var browseURL string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Starts an interactive session. Every line is one command; type help to
list them. The current view is printed after each command together with the
URL that reproduces it.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseURL, "url", "/", "initial storefront URL")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, zapcore.WarnLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if _, err := urlstate.ParseURL(browseURL); err != nil {
		return err
	}

	loader := source.NewLoader(newSource(cfg), logger)
	b := browse.New(loader, urlstate.NewMemoryHistory(browseURL), os.Stdout, logger)
	return b.Run(cmd.Context(), os.Stdin)
}
