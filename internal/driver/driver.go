package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/pagegrab/internal/downloader"
	"github.com/tanq16/pagegrab/internal/output"
	"github.com/tanq16/pagegrab/internal/scanner"
	"github.com/tanq16/pagegrab/internal/selector"
	"github.com/tanq16/pagegrab/internal/utils"
)

const (
	ExitOK    = 0
	ExitError = 1
)

var errEmptyURL = errors.New("URL cannot be empty")

type Deps struct {
	Config   utils.Config
	Provider selector.Provider
	Printer  *output.Printer
}

// Run walks one session from URL prompt to finished downloads and returns
// the process exit code.
func Run(ctx context.Context, deps Deps) (code int) {
	defer func() {
		if r := recover(); r != nil {
			deps.Printer.PrintError(fmt.Sprintf("\nA critical error occurred: %v", r))
			code = ExitError
		}
	}()
	err := run(ctx, deps)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, selector.ErrCancelled), errors.Is(err, context.Canceled):
		deps.Printer.PrintWarning("\nOperation interrupted by the user.")
		return ExitOK
	case errors.Is(err, errEmptyURL):
		deps.Printer.PrintError("URL cannot be empty. Exiting.")
		return ExitError
	default:
		log.Debug().Str("op", "driver/run").Err(err).Msg("Run failed")
		deps.Printer.PrintError(fmt.Sprintf("\nA critical error occurred: %v", err))
		return ExitError
	}
}

func run(ctx context.Context, deps Deps) error {
	pageURL, err := deps.Provider.URL(ctx)
	if err != nil {
		return err
	}
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return errEmptyURL
	}

	deps.Printer.PrintInfo(fmt.Sprintf("Analyzing page: %s...", pageURL))
	scanClient := utils.NewGrabHTTPClient(deps.Config.ScanClientConfig())
	index, err := scanner.Scan(ctx, scanClient, pageURL)
	if ctx.Err() != nil {
		return context.Canceled
	}
	if err != nil {
		deps.Printer.PrintError(err.Error())
	}
	if len(index) == 0 {
		deps.Printer.PrintWarning("No file links found on the page or an error occurred.")
		return nil
	}

	selected, err := deps.Provider.Select(ctx, selector.ChoicesFor(index))
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		deps.Printer.PrintWarning("You did not select anything. Exiting.")
		return nil
	}

	urls := index.Collect(selected)
	log.Debug().Str("op", "driver/run").Msgf("Selected %d extensions covering %d files", len(selected), len(urls))
	dl := downloader.New(utils.NewGrabHTTPClient(deps.Config.DownloadClientConfig()), deps.Config, deps.Printer)
	summary, err := dl.Download(ctx, urls)
	if err != nil {
		return err
	}
	log.Debug().Str("op", "driver/run").Msgf("Downloaded %d, failed %d", summary.Downloaded, summary.Failed)
	deps.Printer.PrintSuccess("\nProcess completed.")
	return nil
}
