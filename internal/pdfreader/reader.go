// =============================================================================
// Position Extractor - PDF Rectangle Reader
// =============================================================================
//
// Positional text extraction from the statement PDF using ledongthuc/pdf.
// The library yields one Text fragment per glyph run, each carrying its
// page-space origin (X, Y, origin bottom-left). This reader:
//
//   1. keeps the fragments whose origin falls inside a named rectangle
//      (rectangles are configured top-left-origin, like the legacy tooling,
//      and converted against the page MediaBox height),
//   2. groups them into lines by Y proximity,
//   3. assembles each line left to right, inserting a space only across a
//      real horizontal gap,
//   4. appends the non-empty lines to that rectangle's sequence, page after
//      page.
//
// Extraction failures are reported to the caller together with whatever was
// collected up to that point; the caller decides to log and carry on.
//
// =============================================================================

package pdfreader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Rect is an axis-aligned region in page points, origin at the top-left
// corner of the page.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// defaultPageHeight is the A4 height in points, used when a page carries no
// resolvable MediaBox.
const defaultPageHeight = 842.0

// lineTolerance is the maximum Y distance between fragments of one line.
const lineTolerance = 2.0

// gapThreshold is the horizontal gap beyond which two fragments on a line
// are separated by a space when joined.
const gapThreshold = 1.0

// ExtractRegions opens the document at path and extracts the text inside
// each named rectangle across the first min(pages, total) pages. The
// returned map always holds an entry per region name, possibly empty. When
// the document cannot be opened or a page cannot be decoded, the data
// collected so far is returned alongside the error.
func ExtractRegions(path string, regions map[string]Rect, pages int) (map[string][]string, error) {
	collected := make(map[string][]string, len(regions))
	for name := range regions {
		collected[name] = nil
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return collected, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	total := reader.NumPage()
	if pages > total {
		pages = total
	}

	for pageNum := 1; pageNum <= pages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		texts, err := pageTexts(page)
		if err != nil {
			return collected, fmt.Errorf("failed to decode page %d: %w", pageNum, err)
		}

		height := pageHeight(page)
		for name, rect := range regions {
			lines := linesInRect(texts, rect, height)
			collected[name] = append(collected[name], lines...)
		}
	}

	return collected, nil
}

// pageTexts pulls the fragment list for a page, converting the library's
// panic on malformed content streams into an error.
func pageTexts(page pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream: %v", r)
		}
	}()
	texts = page.Content().Text
	return texts, nil
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// since the attribute is inheritable.
func pageHeight(page pdf.Page) float64 {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.IsNull() || box.Len() != 4 {
			continue
		}
		if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
			return h
		}
	}
	return defaultPageHeight
}

// contains reports whether a fragment origin (bottom-left page space) falls
// inside a top-left-origin rectangle on a page of the given height.
func contains(rect Rect, x, y, height float64) bool {
	flipped := height - y
	return x >= rect.X0 && x <= rect.X1 && flipped >= rect.Y0 && flipped <= rect.Y1
}

// textLine is one reconstructed line of text within a rectangle.
type textLine struct {
	y         float64
	fragments []pdf.Text
}

// linesInRect reconstructs the text lines inside rect, ordered top to bottom.
func linesInRect(texts []pdf.Text, rect Rect, height float64) []string {
	var lines []textLine

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		if !contains(rect, t.X, t.Y, height) {
			continue
		}

		placed := false
		for i := range lines {
			if abs(lines[i].y-t.Y) < lineTolerance {
				lines[i].fragments = append(lines[i].fragments, t)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, textLine{y: t.Y, fragments: []pdf.Text{t}})
		}
	}

	// Larger Y is closer to the top of the page.
	sort.Slice(lines, func(i, j int) bool { return lines[i].y > lines[j].y })

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := joinFragments(line.fragments); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// joinFragments assembles a line's fragments left to right. A space is only
// inserted when the next fragment starts past the previous one's extent,
// so glyph runs inside a single number are not split apart.
func joinFragments(fragments []pdf.Text) string {
	sort.Slice(fragments, func(i, j int) bool { return fragments[i].X < fragments[j].X })

	var b strings.Builder
	for i, t := range fragments {
		if i > 0 {
			prev := fragments[i-1]
			if t.X > prev.X+prev.W+gapThreshold {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
	}
	return strings.TrimSpace(b.String())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
