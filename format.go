package strictdiff

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Known diff formats.
const (
	// FormatDelta is the canonical tab-separated wire form, the same one
	// Revision.String produces.
	FormatDelta = "delta"
	// FormatGNU prefixes insertions with "+ " and deletions with "- ",
	// leaves equalities unprefixed, and separates diffs with newlines.
	FormatGNU = "gnu"
	// FormatMd marks insertions as ++text++ and deletions as ~~text~~.
	FormatMd = "md"
	// FormatHTML wraps insertions and deletions in classed span elements.
	FormatHTML = "html"
)

// Format renders diffs in the named format. An empty format means
// FormatDelta. An unknown format is an error.
func Format(diffs []Diff, format string) (string, error) {
	switch format {
	case FormatDelta, "":
		return formatDelta(diffs), nil
	case FormatGNU:
		return formatGNU(diffs), nil
	case FormatMd:
		return formatMd(diffs), nil
	case FormatHTML:
		return formatHTML(diffs), nil
	}
	return "", fmt.Errorf("unknown diff format %q", format)
}

// formatDelta crushes the diffs into an encoded string which describes the
// operations required to transform text1 into text2. E.g. =3\t-2\t+ing ->
// Keep 3 runes, delete 2 runes, insert 'ing'. Operations are tab-separated.
func formatDelta(diffs []Diff) string {
	var buf bytes.Buffer
	for i, d := range diffs {
		if i != 0 {
			_ = buf.WriteByte('\t')
		}
		switch d.Op {
		case OpInsert:
			_ = buf.WriteByte('+')
			_, _ = buf.WriteString(Compress(d.Text))
		case OpDelete:
			_ = buf.WriteByte('-')
			_, _ = buf.WriteString(strconv.Itoa(utf8.RuneCountInString(d.Text)))
		case OpEqual:
			_ = buf.WriteByte('=')
			_, _ = buf.WriteString(strconv.Itoa(utf8.RuneCountInString(d.Text)))
		}
	}
	return buf.String()
}

func formatGNU(diffs []Diff) string {
	var buf bytes.Buffer
	for i, d := range diffs {
		if i != 0 {
			_ = buf.WriteByte('\n')
		}
		switch d.Op {
		case OpInsert:
			_, _ = buf.WriteString("+ ")
		case OpDelete:
			_, _ = buf.WriteString("- ")
		}
		_, _ = buf.WriteString(d.Text)
	}
	return buf.String()
}

func formatMd(diffs []Diff) string {
	var buf bytes.Buffer
	for _, d := range diffs {
		switch d.Op {
		case OpInsert:
			_, _ = buf.WriteString("++")
			_, _ = buf.WriteString(d.Text)
			_, _ = buf.WriteString("++")
		case OpDelete:
			_, _ = buf.WriteString("~~")
			_, _ = buf.WriteString(d.Text)
			_, _ = buf.WriteString("~~")
		case OpEqual:
			_, _ = buf.WriteString(d.Text)
		}
	}
	return buf.String()
}

func formatHTML(diffs []Diff) string {
	var buf bytes.Buffer
	for _, d := range diffs {
		text := html.EscapeString(d.Text)
		switch d.Op {
		case OpInsert:
			_, _ = buf.WriteString(`<span class="diff-inserted">`)
			_, _ = buf.WriteString(text)
			_, _ = buf.WriteString(`</span>`)
		case OpDelete:
			_, _ = buf.WriteString(`<span class="diff-deleted">`)
			_, _ = buf.WriteString(text)
			_, _ = buf.WriteString(`</span>`)
		case OpEqual:
			_, _ = buf.WriteString(text)
		}
	}
	return buf.String()
}

// DiffPrettyHtml converts a []Diff into a pretty HTML report. It is
// intended as an example from which to write one's own display functions.
func (config *Config) DiffPrettyHtml(diffs []Diff) string {
	var buf bytes.Buffer
	for _, d := range diffs {
		text := strings.Replace(html.EscapeString(d.Text), "\n", "&para;<br>", -1)
		switch d.Op {
		case OpInsert:
			_, _ = buf.WriteString("<ins style=\"background:#e6ffe6;\">")
			_, _ = buf.WriteString(text)
			_, _ = buf.WriteString("</ins>")
		case OpDelete:
			_, _ = buf.WriteString("<del style=\"background:#ffe6e6;\">")
			_, _ = buf.WriteString(text)
			_, _ = buf.WriteString("</del>")
		case OpEqual:
			_, _ = buf.WriteString("<span>")
			_, _ = buf.WriteString(text)
			_, _ = buf.WriteString("</span>")
		}
	}
	return buf.String()
}

// DiffPrettyText converts a []Diff into a colored text report.
func (config *Config) DiffPrettyText(diffs []Diff) string {
	var buf bytes.Buffer
	for _, d := range diffs {
		text := d.Text
		switch d.Op {
		case OpInsert:
			_, _ = buf.WriteString("\x1b[32m")
			_, _ = buf.WriteString(text)
			_, _ = buf.WriteString("\x1b[0m")
		case OpDelete:
			_, _ = buf.WriteString("\x1b[31m")
			_, _ = buf.WriteString(text)
			_, _ = buf.WriteString("\x1b[0m")
		case OpEqual:
			_, _ = buf.WriteString(text)
		}
	}
	return buf.String()
}
