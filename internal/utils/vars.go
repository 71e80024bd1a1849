package utils

import "time"

const (
	DefaultOutputDir       = "downloaded_files"
	DefaultScanTimeout     = 15 * time.Second
	DefaultDownloadTimeout = 30 * time.Second
	DefaultChunkSize       = 8192
)

// Desktop Chrome string; some sites reject obvious bot agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
