package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/pagegrab/internal/utils"
)

var (
	ErrNetwork = errors.New("network error")
	ErrParse   = errors.New("parse error")
)

const (
	minExtLen = 2
	maxExtLen = 5
)

// Scan fetches pageURL and indexes every same-host link by extension. The
// client's timeout bounds connecting, the wait for headers, and every gap
// between body reads.
func Scan(ctx context.Context, client *utils.GrabHTTPClient, pageURL string) (LinkIndex, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid page URL: %v", ErrNetwork, err)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: error creating GET request: %v", ErrNetwork, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error accessing page '%s': %w", ErrNetwork, pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: error accessing page '%s': status %d", ErrNetwork, pageURL, resp.StatusCode)
	}
	log.Debug().Str("op", "scanner/scan").Msgf("Fetched %s with status %d", pageURL, resp.StatusCode)

	body := utils.NewIdleReader(resp.Body, client.Timeout(), cancel)
	defer body.Stop()
	index, err := Parse(base, body)
	if err != nil {
		if body.Expired() || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: reading page '%s': %w", ErrNetwork, pageURL, err)
		}
		return nil, err
	}
	log.Debug().Str("op", "scanner/scan").Msgf("Indexed %d links in %d groups", index.Count(), len(index))
	return index, nil
}

// Parse indexes the anchors of an HTML document whose address is base. Links
// are kept only when their host:port equals base's exactly.
func Parse(base *url.URL, r io.Reader) (LinkIndex, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unexpected error while analyzing the page: %w", ErrParse, err)
	}
	index := make(LinkIndex)
	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			log.Debug().Str("op", "scanner/parse").Msgf("Skipping unparsable href %q", href)
			return
		}
		full := base.ResolveReference(ref)
		if full.Host != base.Host {
			return
		}
		ext, ok := Extension(full.EscapedPath())
		if !ok {
			return
		}
		link := full.String()
		if _, dup := seen[link]; dup {
			return
		}
		seen[link] = struct{}{}
		index[ext] = append(index[ext], link)
	})
	return index, nil
}

// Extension returns the lowercased final dot-suffix of the escaped path p;
// an encoded dot such as %2E does not start one. Only suffixes of
// 2 to 5 characters, dot included, are accepted. Leading dots of the last
// path element are part of the name, so "/.gz" has no extension.
func Extension(p string) (string, bool) {
	name := p[strings.LastIndex(p, "/")+1:]
	name = strings.TrimLeft(name, ".")
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return "", false
	}
	ext := name[dot:]
	if n := utf8.RuneCountInString(ext); n < minExtLen || n > maxExtLen {
		return "", false
	}
	return strings.ToLower(ext), true
}
