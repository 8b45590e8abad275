// Package coupon validates promotional codes at checkout.
//
// Campaign code lists are distributed as plain or gzipped text files, one
// code per line, either on disk or behind HTTP. A code is accepted when it
// has 8-10 characters and appears in at least MinMatches of the loaded
// lists. Each list carries a bloom filter in front of its exact set so the
// common miss never touches the map.
package coupon

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"golang.org/x/sync/errgroup"
)

// MinMatches is the number of lists a code must appear in to be valid.
const MinMatches = 2

const bloomFalsePositiveRate = 0.001

// Validator validates promo codes against the loaded campaign lists
type Validator struct {
	mu      sync.RWMutex
	lists   []*codeList
	sources []string
}

// codeList holds one campaign list: a bloom filter for the fast negative
// path and the exact set for confirmation.
type codeList struct {
	filter *bloom.BloomFilter
	codes  map[string]struct{}
}

func (l *codeList) contains(code string) bool {
	if !l.filter.TestString(code) {
		return false
	}
	_, ok := l.codes[code]
	return ok
}

// NewValidator creates an empty validator; call Load before use
func NewValidator() *Validator {
	return &Validator{}
}

// Load reads all campaign lists concurrently and swaps them in atomically.
// A source is an http(s) URL or a local file path; a ".gz" suffix is
// decompressed transparently. Any failed source fails the whole load and
// the previous lists stay active.
func (v *Validator) Load(ctx context.Context, sources []string) error {
	if len(sources) == 0 {
		return fmt.Errorf("no campaign list sources provided")
	}

	lists := make([]*codeList, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			list, err := loadSource(ctx, src)
			if err != nil {
				return fmt.Errorf("load %s: %w", src, err)
			}
			lists[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	v.mu.Lock()
	v.lists = lists
	v.sources = append([]string(nil), sources...)
	v.mu.Unlock()

	return nil
}

// IsValid checks a promo code against the loaded lists. The code is trimmed
// and upper-cased before matching.
func (v *Validator) IsValid(ctx context.Context, code string) bool {
	code = normalize(code)
	if len(code) < 8 || len(code) > 10 {
		return false
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	if len(v.lists) < MinMatches {
		return false
	}

	matches := 0
	for _, list := range v.lists {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		if list.contains(code) {
			matches++
			if matches >= MinMatches {
				return true
			}
		}
	}
	return false
}

// Stats returns load statistics for the monitoring endpoint
func (v *Validator) Stats() map[string]interface{} {
	v.mu.RLock()
	defer v.mu.RUnlock()

	listSizes := make([]int, len(v.lists))
	totalCodes := 0
	for i, list := range v.lists {
		listSizes[i] = len(list.codes)
		totalCodes += len(list.codes)
	}

	return map[string]interface{}{
		"total_files": len(v.lists),
		"file_sizes":  listSizes,
		"total_codes": totalCodes,
		"sources":     append([]string(nil), v.sources...),
	}
}

func loadSource(ctx context.Context, source string) (*codeList, error) {
	reader, err := openSource(ctx, source)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	codes, err := parseCodes(reader)
	if err != nil {
		return nil, err
	}

	filter := bloom.NewWithEstimates(uint(max(len(codes), 1)), bloomFalsePositiveRate)
	for code := range codes {
		filter.AddString(code)
	}

	return &codeList{filter: filter, codes: codes}, nil
}

// openSource returns a reader over the source contents
func openSource(ctx context.Context, source string) (io.ReadCloser, error) {
	var body io.ReadCloser

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		// Campaign files can run into hundreds of megabytes.
		client := &http.Client{Timeout: 5 * time.Minute}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("download: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		body = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		body = f
	}

	if strings.HasSuffix(source, ".gz") {
		gz, err := gzip.NewReader(body)
		if err != nil {
			body.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return &gzipReadCloser{gz: gz, underlying: body}, nil
	}
	return body, nil
}

type gzipReadCloser struct {
	gz         *gzip.Reader
	underlying io.ReadCloser
}

func (r *gzipReadCloser) Read(p []byte) (int, error) { return r.gz.Read(p) }

func (r *gzipReadCloser) Close() error {
	gzErr := r.gz.Close()
	if err := r.underlying.Close(); err != nil {
		return err
	}
	return gzErr
}

func parseCodes(r io.Reader) (map[string]struct{}, error) {
	codes := make(map[string]struct{})
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if code := normalize(scanner.Text()); code != "" {
			codes[code] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}
	return codes, nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
