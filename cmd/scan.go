package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tanq16/pagegrab/internal/output"
	"github.com/tanq16/pagegrab/internal/scanner"
	"github.com/tanq16/pagegrab/internal/utils"
	"gopkg.in/yaml.v3"
)

type ScanGroup struct {
	Extension string   `yaml:"extension"`
	Count     int      `yaml:"count"`
	URLs      []string `yaml:"urls"`
}

type ScanReport struct {
	Page   string      `yaml:"page"`
	Groups []ScanGroup `yaml:"groups"`
}

func newScanCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "scan [URL] [--yaml]",
		Short: "List the file links on a page grouped by extension",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printer := output.Stdio()
			pageURL := args[0]
			if _, err := url.Parse(pageURL); err != nil {
				printer.PrintError("Invalid URL format")
				os.Exit(1)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			cfg := utils.DefaultConfig()
			index, err := scanner.Scan(ctx, utils.NewGrabHTTPClient(cfg.ScanClientConfig()), pageURL)
			if err != nil {
				printer.PrintError(err.Error())
			}
			report := buildScanReport(pageURL, index)
			if asYAML {
				if err := writeScanYAML(os.Stdout, report); err != nil {
					printer.PrintError(fmt.Sprintf("Error encoding YAML: %v", err))
					stop()
					os.Exit(1)
				}
				return
			}
			if len(report.Groups) == 0 {
				printer.PrintWarning("No file links found on the page or an error occurred.")
				return
			}
			printer.PrintRaw(renderScanTable(report))
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the grouped links as YAML")
	return cmd
}

func buildScanReport(pageURL string, index scanner.LinkIndex) ScanReport {
	report := ScanReport{Page: pageURL, Groups: []ScanGroup{}}
	for _, ext := range index.Extensions() {
		report.Groups = append(report.Groups, ScanGroup{
			Extension: ext,
			Count:     len(index[ext]),
			URLs:      index[ext],
		})
	}
	return report
}

func writeScanYAML(w io.Writer, report ScanReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

func renderScanTable(report ScanReport) string {
	width := max(output.TerminalWidth()-30, 20)
	rows := make([][]string, 0, len(report.Groups))
	for _, g := range report.Groups {
		example := ""
		if len(g.URLs) > 0 {
			example = output.Truncate(g.URLs[0], width)
		}
		rows = append(rows, []string{g.Extension, strconv.Itoa(g.Count), example})
	}
	return output.RenderTable([]string{"Extension", "Files", "Example"}, rows)
}
