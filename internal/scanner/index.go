package scanner

import "sort"

// LinkIndex maps a lowercased extension such as ".pdf" to the unique URLs
// found for it on one page.
type LinkIndex map[string][]string

func (idx LinkIndex) Extensions() []string {
	exts := make([]string, 0, len(idx))
	for ext := range idx {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (idx LinkIndex) Count() int {
	total := 0
	for _, urls := range idx {
		total += len(urls)
	}
	return total
}

// Collect flattens the named groups into one deduplicated list. The order of
// the result is unspecified.
func (idx LinkIndex) Collect(exts []string) []string {
	seen := make(map[string]struct{})
	for _, ext := range exts {
		for _, u := range idx[ext] {
			seen[u] = struct{}{}
		}
	}
	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	return urls
}
