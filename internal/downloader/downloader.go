package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/pagegrab/internal/output"
	"github.com/tanq16/pagegrab/internal/utils"
)

var ErrNetwork = errors.New("network error")

type Summary struct {
	Downloaded int
	Failed     int
}

type Downloader struct {
	client    utils.HTTPDoer
	outputDir string
	chunkSize int
	timeout   time.Duration
	printer   *output.Printer
}

func New(client utils.HTTPDoer, cfg utils.Config, printer *output.Printer) *Downloader {
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = utils.DefaultChunkSize
	}
	timeout := cfg.DownloadTimeout
	if timeout <= 0 {
		timeout = utils.DefaultDownloadTimeout
	}
	return &Downloader{
		client:    client,
		outputDir: cfg.OutputDir,
		chunkSize: chunkSize,
		timeout:   timeout,
		printer:   printer,
	}
}

// Download fetches each URL in turn into the output directory. A failed file
// is reported and skipped; only a missing output directory or cancellation
// stops the batch.
func (d *Downloader) Download(ctx context.Context, urls []string) (Summary, error) {
	var summary Summary
	if err := os.MkdirAll(d.outputDir, 0755); err != nil {
		return summary, fmt.Errorf("error creating output directory: %w", err)
	}
	d.printer.PrintInfo(fmt.Sprintf("\nStarting download. Files will be saved to the '%s' folder.", d.outputDir))

	for _, fileURL := range urls {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		d.printer.PrintPending(fmt.Sprintf("Downloading: %s", fileURL))
		name, size, err := d.downloadOne(ctx, fileURL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return summary, ctxErr
			}
			summary.Failed++
			log.Debug().Str("op", "downloader/download").Err(err).Msgf("Skipping %s", fileURL)
			d.printer.PrintError(fmt.Sprintf(" %s Error downloading file '%s': %v", output.StyleSymbols["warning"], fileURL, err))
			continue
		}
		summary.Downloaded++
		d.printer.PrintSuccess(fmt.Sprintf(" %s File '%s' downloaded successfully (%s)", output.StyleSymbols["arrow"], name, utils.FormatBytes(uint64(size))))
	}
	return summary, nil
}

func (d *Downloader) downloadOne(ctx context.Context, fileURL string) (string, int64, error) {
	name, err := utils.FileNameFromURL(fileURL)
	if err != nil {
		return "", 0, err
	}
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", 0, fmt.Errorf("%w: error creating GET request: %v", ErrNetwork, err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return "", 0, fmt.Errorf("%w: unexpected status code: %d", ErrNetwork, resp.StatusCode)
	}

	outputPath := filepath.Join(d.outputDir, name)
	// Same-named files overwrite each other; the last one written wins.
	outFile, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", 0, fmt.Errorf("error creating output file: %w", err)
	}
	defer outFile.Close()

	// A body that stops delivering bytes for the timeout aborts this file only.
	body := utils.NewIdleReader(resp.Body, d.timeout, cancel)
	defer body.Stop()
	written, err := d.copyChunks(outFile, body)
	if err != nil {
		return "", written, err
	}
	log.Debug().Str("op", "downloader/download").Msgf("Wrote %d bytes to %s", written, outputPath)
	return name, written, nil
}

func (d *Downloader) copyChunks(dst io.Writer, src io.Reader) (int64, error) {
	var written int64
	buffer := make([]byte, d.chunkSize)
	for {
		bytesRead, readErr := src.Read(buffer)
		if bytesRead > 0 {
			n, writeErr := dst.Write(buffer[:bytesRead])
			written += int64(n)
			if writeErr != nil {
				return written, fmt.Errorf("error writing to output file: %w", writeErr)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return written, nil
			}
			return written, fmt.Errorf("%w: error reading response body: %w", ErrNetwork, readErr)
		}
	}
}
