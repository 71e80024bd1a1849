package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tanq16/pagegrab/internal/driver"
	"github.com/tanq16/pagegrab/internal/output"
	"github.com/tanq16/pagegrab/internal/selector"
	"github.com/tanq16/pagegrab/internal/utils"
)

func newGetCmd() *cobra.Command {
	var extensions []string

	cmd := &cobra.Command{
		Use:   "get [URL] --ext EXT [--ext EXT ...]",
		Short: "Download the chosen extensions from a page without prompting",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			code := driver.Run(ctx, driver.Deps{
				Config:   utils.DefaultConfig(),
				Provider: selector.Fixed{PageURL: args[0], Extensions: extensions},
				Printer:  output.Stdio(),
			})
			stop()
			os.Exit(code)
		},
	}

	cmd.Flags().StringArrayVarP(&extensions, "ext", "e", []string{}, "Extension to download (like '.pdf'); 'all' selects every group; can be specified multiple times")
	return cmd
}
