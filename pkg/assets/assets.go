// Package assets localizes remote upload references embedded in rich
// text: each referenced binary is fetched and stored next to the
// document, and the reference rewritten to the local relative path.
package assets

import (
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lerenn/milestone-docs/pkg/logger"
	"github.com/lerenn/milestone-docs/pkg/site"
	"github.com/lerenn/milestone-docs/pkg/tracker"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=assets.go -destination=mocks/assets.gen.go -package=mocks

// ImagesDir is the per-document directory assets are stored under.
const ImagesDir = "images"

// uploadPattern matches an image reference whose URL carries an upload
// secret and filename, optionally followed by a sizing annotation.
// Already-localized references have no /uploads/ segment and never match.
var uploadPattern = regexp.MustCompile(`(!\[.*?\])\(([^()\s]*?/uploads/([0-9a-f]+)/([^\s)]+))\)(\s*\{[^}]*\})?`)

// Fetcher is the single tracker operation the localizer depends on.
type Fetcher interface {
	// FetchAsset opens a stream to an uploaded attachment. The caller
	// must close the returned reader.
	FetchAsset(ctx context.Context, project *tracker.Project, secret, filename string) (io.ReadCloser, error)
}

// Localizer interface rewrites remote upload references in rich text.
type Localizer interface {
	// Localize fetches every upload referenced by text into
	// <docDir>/images/ and rewrites the references to relative local
	// paths. A failed fetch leaves its reference untouched;
	// localization never fails a document.
	Localize(ctx context.Context, text, docDir string, project *tracker.Project) string
}

type realLocalizer struct {
	fetcher Fetcher
	writer  site.Writer
	logger  logger.Logger
}

// NewLocalizer creates a new Localizer instance.
func NewLocalizer(fetcher Fetcher, writer site.Writer, log logger.Logger) Localizer {
	return &realLocalizer{
		fetcher: fetcher,
		writer:  writer,
		logger:  log,
	}
}

// Localize fetches every upload referenced by text and rewrites the
// references. Each match is fetched independently: the same asset
// referenced twice is fetched twice, and documents never share copies.
func (l *realLocalizer) Localize(ctx context.Context, text, docDir string, project *tracker.Project) string {
	matches := uploadPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var out strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		out.WriteString(text[last:start])
		out.WriteString(l.localizeMatch(ctx, text, m, docDir, project))
		last = end
	}
	out.WriteString(text[last:])
	return out.String()
}

// localizeMatch fetches one referenced upload and returns the rewritten
// reference, or the original match text when the fetch fails.
func (l *realLocalizer) localizeMatch(ctx context.Context, text string, m []int, docDir string, project *tracker.Project) string {
	original := text[m[0]:m[1]]
	altText := text[m[2]:m[3]]
	secret := text[m[6]:m[7]]
	filename := text[m[8]:m[9]]

	// The sizing annotation, when present, is carried over verbatim.
	annotation := ""
	if m[10] >= 0 {
		annotation = text[m[10]:m[11]]
	}

	// Drop any query string from the filename.
	if i := strings.IndexByte(filename, '?'); i >= 0 {
		filename = filename[:i]
	}

	body, err := l.fetcher.FetchAsset(ctx, project, secret, filename)
	if err != nil {
		return original
	}
	defer body.Close()

	if err := l.writer.WriteAsset(filepath.Join(docDir, ImagesDir), filename, body); err != nil {
		return original
	}

	l.logger.Logf("✅ Imagem baixada: %s", filename)
	return altText + "(" + ImagesDir + "/" + filename + ")" + annotation
}
