// Package pages loads saved pages from disk so the parsers can run offline.
package pages

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rotisserie/eris"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxPageSize bounds how much of a single page is read. Larger pages are
// rejected rather than parsed truncated.
var maxPageSize int64 = 16 << 20

// Load reads a saved page, gunzipping files ending in .gz, and returns it as UTF-8
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", eris.Wrap(err, "pages: open")
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", eris.Wrapf(err, "pages: gzip reader for %s", path)
		}
		defer gz.Close()
		r = gz
	}

	return Read(r)
}

// Read decodes a page body to UTF-8, sniffing its charset from the first
// kilobyte (BOM, meta tags, then content heuristics).
func Read(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxPageSize+1))
	if err != nil {
		return "", eris.Wrap(err, "pages: read body")
	}
	if int64(len(raw)) > maxPageSize {
		return "", eris.Errorf("pages: page exceeds %s", humanize.IBytes(uint64(maxPageSize)))
	}

	body := bufio.NewReader(bytes.NewReader(raw))
	e := DetermineEncoding(body)
	utf8Reader := transform.NewReader(body, e.NewDecoder())

	b, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", eris.Wrap(err, "pages: decode body")
	}
	return string(b), nil
}

// DetermineEncoding guesses the charset of a buffered body without consuming it
func DetermineEncoding(r *bufio.Reader) encoding.Encoding {
	head, err := r.Peek(1024)
	if err != nil && len(head) == 0 {
		return unicode.UTF8
	}
	e, _, _ := charset.DetermineEncoding(head, "text/html")
	return e
}

// List returns the saved pages in dir (*.html, *.htm and their .gz forms), sorted
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrap(err, "pages: read dir")
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsPage(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// IsPage reports whether name looks like a saved HTML page
func IsPage(name string) bool {
	name = strings.ToLower(strings.TrimSuffix(name, ".gz"))
	return strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm")
}
