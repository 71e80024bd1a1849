package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tanq16/pagegrab/internal/driver"
	"github.com/tanq16/pagegrab/internal/output"
	"github.com/tanq16/pagegrab/internal/selector"
	"github.com/tanq16/pagegrab/internal/utils"
)

var (
	debug bool
)

var PagegrabVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "pagegrab",
	Short:   "Scan a web page for file links and download the extensions you pick",
	Version: PagegrabVersion,
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		code := driver.Run(ctx, driver.Deps{
			Config:   utils.DefaultConfig(),
			Provider: selector.NewTerminal(os.Stdin, os.Stdout),
			Printer:  output.Stdio(),
		})
		stop()
		os.Exit(code)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newGetCmd())
}
