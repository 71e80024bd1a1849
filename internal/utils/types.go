package utils

import "time"

// Config carries every tunable of a run. The CLI only ever builds it from
// DefaultConfig; tests shrink the timeouts and point OutputDir at a temp dir.
type Config struct {
	OutputDir       string
	UserAgent       string
	ScanTimeout     time.Duration
	DownloadTimeout time.Duration
	ChunkSize       int
}

func DefaultConfig() Config {
	return Config{
		OutputDir:       DefaultOutputDir,
		UserAgent:       DefaultUserAgent,
		ScanTimeout:     DefaultScanTimeout,
		DownloadTimeout: DefaultDownloadTimeout,
		ChunkSize:       DefaultChunkSize,
	}
}

func (c Config) ScanClientConfig() HTTPClientConfig {
	return HTTPClientConfig{Timeout: c.ScanTimeout, UserAgent: c.UserAgent}
}

func (c Config) DownloadClientConfig() HTTPClientConfig {
	return HTTPClientConfig{Timeout: c.DownloadTimeout, UserAgent: c.UserAgent}
}
