package strictdiff

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Patch is the transport form of a single diff. An insertion carries its
// text in compressed form; a deletion or equality carries only the number
// of runes it spans in the original text.
type Patch struct {
	Op     Op
	Length int
	Text   string
}

// PatchFromDiff compresses a diff into its transport form.
func PatchFromDiff(d Diff) Patch {
	if d.Op == OpInsert {
		return Patch{Op: OpInsert, Text: Compress(d.Text)}
	}
	return Patch{Op: d.Op, Length: utf8.RuneCountInString(d.Text)}
}

// String renders the patch as a delta token: "+" followed by the compressed
// insertion, or "-"/"=" followed by the rune count.
func (p Patch) String() string {
	switch p.Op {
	case OpInsert:
		return "+" + p.Text
	case OpDelete:
		return "-" + strconv.Itoa(p.Length)
	}
	return "=" + strconv.Itoa(p.Length)
}

// Revision is an ordered sequence of patches describing how one text
// becomes another. It retains no reference to either text.
type Revision []Patch

// Revision computes the revision that transforms text1 into text2.
func (config *Config) Revision(text1, text2 string) Revision {
	diffs := config.Diff(text1, text2)
	rev := make(Revision, 0, len(diffs))
	for _, d := range diffs {
		rev = append(rev, PatchFromDiff(d))
	}
	return rev
}

// String renders the revision in delta format: patch tokens joined by tabs.
// E.g. "=3\t-2\t+ing" means keep 3 runes, delete 2 runes, insert "ing".
func (r Revision) String() string {
	var buf bytes.Buffer
	for i, p := range r {
		if i != 0 {
			_ = buf.WriteByte('\t')
		}
		_, _ = buf.WriteString(p.String())
	}
	return buf.String()
}

// ParseRevision parses a delta string back into a revision. Empty tokens
// (from consecutive tabs) are skipped. A bad sigil, a non-positive length,
// or an undecodable insertion payload is an error.
func ParseRevision(delta string) (Revision, error) {
	var rev Revision
	for _, token := range strings.Split(delta, "\t") {
		if len(token) == 0 {
			continue
		}
		// Each token begins with a one character sigil which specifies the
		// operation (insert, delete, equality).
		param := token[1:]
		switch sigil := token[0]; sigil {
		case '+':
			if _, err := Decompress(param); err != nil {
				return nil, fmt.Errorf("bad insertion %q: %v", token, err)
			}
			rev = append(rev, Patch{Op: OpInsert, Text: param})
		case '-', '=':
			n, err := strconv.Atoi(param)
			if err != nil {
				return nil, fmt.Errorf("bad length in %q: %v", token, err)
			}
			if n <= 0 {
				return nil, errors.New("non-positive length in " + strconv.Quote(token))
			}
			op := OpEqual
			if sigil == '-' {
				op = OpDelete
			}
			rev = append(rev, Patch{Op: op, Length: n})
		default:
			return nil, errors.New("invalid patch operation in " + strconv.Quote(token))
		}
	}
	return rev, nil
}

// Apply reconstructs the revised text from the exact original the revision
// was computed from. Only the shape of the original is verified: equality
// spans are consumed by length, their content is copied without being
// byte-matched. A patch that overruns the original, or an original with
// runes left over after the last patch, is an error.
func (r Revision) Apply(text string) (string, error) {
	runes := []rune(text)
	var buf bytes.Buffer
	i := 0
	for _, p := range r {
		switch p.Op {
		case OpInsert:
			s, err := Decompress(p.Text)
			if err != nil {
				return "", fmt.Errorf("bad insertion %q: %v", p.Text, err)
			}
			_, _ = buf.WriteString(s)
		default:
			if p.Length <= 0 {
				return "", fmt.Errorf("non-positive patch length %d", p.Length)
			}
			if i+p.Length > len(runes) {
				return "", fmt.Errorf("patch overruns original text: %d+%d > %d",
					i, p.Length, len(runes))
			}
			if p.Op == OpEqual {
				_, _ = buf.WriteString(string(runes[i : i+p.Length]))
			}
			i += p.Length
		}
	}
	if i != len(runes) {
		return "", fmt.Errorf("revision consumed %d of %d runes", i, len(runes))
	}
	return buf.String(), nil
}

// ApplySequence applies revisions in order, feeding each result to the
// next. The first failure aborts the chain.
func ApplySequence(revisions []Revision, text string) (string, error) {
	var err error
	for i, r := range revisions {
		text, err = r.Apply(text)
		if err != nil {
			return "", fmt.Errorf("revision %d: %v", i, err)
		}
	}
	return text, nil
}
