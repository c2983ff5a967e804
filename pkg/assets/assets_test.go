//go:build unit

package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/milestone-docs/pkg/logger"
	"github.com/lerenn/milestone-docs/pkg/site"
	"github.com/lerenn/milestone-docs/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves fixed bytes per filename, or fails every fetch.
type fakeFetcher struct {
	content map[string]string
	fail    bool
	calls   int
}

func (f *fakeFetcher) FetchAsset(_ context.Context, _ *tracker.Project, _, filename string) (io.ReadCloser, error) {
	f.calls++
	if f.fail {
		return nil, fmt.Errorf("%w: %s", tracker.ErrAssetUnavailable, filename)
	}
	return io.NopCloser(strings.NewReader(f.content[filename])), nil
}

func newTestLocalizer(fetcher Fetcher) Localizer {
	return NewLocalizer(fetcher, site.NewWriter(), logger.NewNoopLogger())
}

func TestLocalize_RewritesReferenceAndStoresAsset(t *testing.T) {
	fetcher := &fakeFetcher{content: map[string]string{"shot.png": "binary-data"}}
	l := newTestLocalizer(fetcher)
	docDir := t.TempDir()

	text := "Before ![screenshot](https://host/uploads/abc123/shot.png) after"
	got := l.Localize(context.Background(), text, docDir, &tracker.Project{ID: 42})

	assert.Equal(t, "Before ![screenshot](images/shot.png) after", got)

	stored, err := os.ReadFile(filepath.Join(docDir, ImagesDir, "shot.png"))
	require.NoError(t, err)
	assert.Equal(t, "binary-data", string(stored))
}

func TestLocalize_PreservesSizingAnnotation(t *testing.T) {
	fetcher := &fakeFetcher{content: map[string]string{"shot.png": "binary-data"}}
	l := newTestLocalizer(fetcher)

	text := "![screenshot](https://host/uploads/abc123/shot.png){width=50%}"
	got := l.Localize(context.Background(), text, t.TempDir(), &tracker.Project{ID: 42})

	assert.Equal(t, "![screenshot](images/shot.png){width=50%}", got)
}

func TestLocalize_StripsQueryString(t *testing.T) {
	fetcher := &fakeFetcher{content: map[string]string{"shot.png": "binary-data"}}
	l := newTestLocalizer(fetcher)
	docDir := t.TempDir()

	text := "![s](https://host/uploads/abc123/shot.png?width=12)"
	got := l.Localize(context.Background(), text, docDir, &tracker.Project{ID: 42})

	assert.Equal(t, "![s](images/shot.png)", got)
	_, err := os.Stat(filepath.Join(docDir, ImagesDir, "shot.png"))
	assert.NoError(t, err)
}

func TestLocalize_FailedFetchLeavesTextUntouched(t *testing.T) {
	fetcher := &fakeFetcher{fail: true}
	l := newTestLocalizer(fetcher)
	docDir := t.TempDir()

	text := "![screenshot](https://host/uploads/abc123/shot.png){width=50%}"
	got := l.Localize(context.Background(), text, docDir, &tracker.Project{ID: 42})

	assert.Equal(t, text, got)
	_, err := os.Stat(filepath.Join(docDir, ImagesDir))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalize_PartialFailureDegradesPerMatch(t *testing.T) {
	fetcher := &fakeFetcher{content: map[string]string{"ok.png": "data"}}
	l := NewLocalizer(&selectiveFetcher{fetcher: fetcher, failing: "bad.png"}, site.NewWriter(), logger.NewNoopLogger())

	text := "![a](https://host/uploads/aaa111/ok.png) and ![b](https://host/uploads/bbb222/bad.png)"
	got := l.Localize(context.Background(), text, t.TempDir(), &tracker.Project{ID: 42})

	assert.Equal(t, "![a](images/ok.png) and ![b](https://host/uploads/bbb222/bad.png)", got)
}

// selectiveFetcher fails for one filename and delegates the rest.
type selectiveFetcher struct {
	fetcher Fetcher
	failing string
}

func (s *selectiveFetcher) FetchAsset(ctx context.Context, project *tracker.Project, secret, filename string) (io.ReadCloser, error) {
	if filename == s.failing {
		return nil, fmt.Errorf("%w: %s", tracker.ErrAssetUnavailable, filename)
	}
	return s.fetcher.FetchAsset(ctx, project, secret, filename)
}

func TestLocalize_AlreadyLocalizedTextUnchanged(t *testing.T) {
	fetcher := &fakeFetcher{}
	l := newTestLocalizer(fetcher)

	text := "![screenshot](images/shot.png){width=50%}"
	got := l.Localize(context.Background(), text, t.TempDir(), &tracker.Project{ID: 42})

	assert.Equal(t, text, got)
	assert.Zero(t, fetcher.calls, "localized references must not be fetched again")
}

func TestLocalize_DuplicateReferenceFetchedTwice(t *testing.T) {
	fetcher := &fakeFetcher{content: map[string]string{"shot.png": "binary-data"}}
	l := newTestLocalizer(fetcher)

	text := "![a](https://host/uploads/abc123/shot.png) ![b](https://host/uploads/abc123/shot.png)"
	got := l.Localize(context.Background(), text, t.TempDir(), &tracker.Project{ID: 42})

	assert.Equal(t, "![a](images/shot.png) ![b](images/shot.png)", got)
	assert.Equal(t, 2, fetcher.calls)
}

func TestLocalize_NoReferences(t *testing.T) {
	fetcher := &fakeFetcher{}
	l := newTestLocalizer(fetcher)

	text := "Plain text with a [link](https://example.com/page)."
	got := l.Localize(context.Background(), text, t.TempDir(), &tracker.Project{ID: 42})

	assert.Equal(t, text, got)
	assert.Zero(t, fetcher.calls)
}

func TestLocalize_EmptyText(t *testing.T) {
	l := newTestLocalizer(&fakeFetcher{})

	assert.Empty(t, l.Localize(context.Background(), "", t.TempDir(), &tracker.Project{ID: 42}))
}
