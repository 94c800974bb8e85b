package dataset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// maxDocumentSize bounds the size of a single JSON document.
const maxDocumentSize = 64 << 20

// Sources locates the two documents. Each entry is a file path or an
// http(s) URL.
type Sources struct {
	Insights  string
	Dashboard string
}

// SourcesIn returns Sources resolving the given names against dir. Names
// that are URLs or absolute paths are left untouched.
func SourcesIn(dir, insights, dashboard string) Sources {
	resolve := func(name string) string {
		if isURL(name) || filepath.IsAbs(name) || dir == "" {
			return name
		}
		return filepath.Join(dir, name)
	}
	return Sources{Insights: resolve(insights), Dashboard: resolve(dashboard)}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Snapshot is an immutable view of both documents as loaded together.
type Snapshot struct {
	Insights  *Insights
	Dashboard *Dashboard
	Sources   Sources
	LoadedAt  time.Time
	// Checksums are hex SHA-256 digests of the raw documents, keyed by
	// "insights" and "dashboard".
	Checksums map[string]string
}

// Loader reads Sources into a Snapshot.
type Loader struct {
	Client *http.Client
}

// NewLoader returns a Loader with a bounded HTTP client.
func NewLoader() *Loader {
	return &Loader{Client: &http.Client{Timeout: 30 * time.Second}}
}

// Load fetches both documents concurrently and decodes them. Failure of
// either document fails the whole load.
func (l *Loader) Load(ctx context.Context, src Sources) (*Snapshot, error) {
	var (
		insights  Insights
		dashboard Dashboard
		sums      [2]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum, err := l.fetchJSON(gctx, src.Insights, &insights)
		if err != nil {
			return fmt.Errorf("loading insights %s: %w", src.Insights, err)
		}
		sums[0] = sum
		return nil
	})
	g.Go(func() error {
		sum, err := l.fetchJSON(gctx, src.Dashboard, &dashboard)
		if err != nil {
			return fmt.Errorf("loading dashboard data %s: %w", src.Dashboard, err)
		}
		sums[1] = sum
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Snapshot{
		Insights:  &insights,
		Dashboard: &dashboard,
		Sources:   src,
		LoadedAt:  time.Now().UTC(),
		Checksums: map[string]string{"insights": sums[0], "dashboard": sums[1]},
	}, nil
}

func (l *Loader) fetchJSON(ctx context.Context, location string, v any) (string, error) {
	raw, err := l.read(ctx, location)
	if err != nil {
		return "", err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return "", fmt.Errorf("decoding JSON: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	if location == "" {
		return nil, fmt.Errorf("empty source")
	}
	if !isURL(location) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := os.Open(location)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxDocumentSize))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
}
