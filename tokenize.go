package strictdiff

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token dictionary limits. The first text stops assigning new tokens at
// maxTokensText1 so that the second text, which is tokenized into the same
// dictionary, cannot run the combined total past maxTokensTotal.
const (
	maxTokensText1 = 40000
	maxTokensTotal = 65535
)

// The UTF-16 surrogate block is skipped when mapping dictionary indices to
// token runes: values in it are not valid code points and would be mangled
// by a []rune to string conversion.
const (
	surrogateMin  = 0xD800
	surrogateSize = 0x800
)

// tokenRune maps a dictionary index to the rune standing in for that token.
func tokenRune(i int) rune {
	if i < surrogateMin {
		return rune(i)
	}
	return rune(i + surrogateSize)
}

// tokenIndex is the inverse of tokenRune.
func tokenIndex(r rune) int {
	if r < surrogateMin {
		return int(r)
	}
	return int(r) - surrogateSize
}

// tokenDict assigns a rune to each unique token encountered.
// tokens[0] is a junk entry so that no token maps to the null character,
// which various debuggers don't like.
type tokenDict struct {
	tokens []string
	ids    map[string]int
}

func newTokenDict() *tokenDict {
	return &tokenDict{
		tokens: []string{""},
		ids:    map[string]int{},
	}
}

// munge walks text, splitting off one token at a time with next and
// encoding each as a single rune. Once the dictionary holds maxTokens
// entries the remainder of the text is emitted as one final token.
func (dict *tokenDict) munge(text string, next func(string) int, maxTokens int) []rune {
	var runes []rune
	for len(text) > 0 {
		end := next(text)
		if len(dict.tokens) == maxTokens {
			end = len(text)
		}
		token := text[:end]
		text = text[end:]
		id, ok := dict.ids[token]
		if !ok {
			dict.tokens = append(dict.tokens, token)
			id = len(dict.tokens) - 1
			dict.ids[token] = id
		}
		runes = append(runes, tokenRune(id))
	}
	return runes
}

// nextLine returns the byte length of the leading line of text, including
// its newline.
func nextLine(text string) int {
	if i := strings.IndexByte(text, '\n'); i != -1 {
		return i + 1
	}
	return len(text)
}

// nextWord returns the byte length of the leading word of text: a maximal
// run of whitespace if text starts with whitespace, otherwise a maximal run
// of non-whitespace.
func nextWord(text string) int {
	first, size := utf8.DecodeRuneInString(text)
	space := unicode.IsSpace(first)
	i := strings.IndexFunc(text[size:], func(r rune) bool {
		return unicode.IsSpace(r) != space
	})
	if i == -1 {
		return len(text)
	}
	return size + i
}

// linesToTokens reduces two texts to strings of token runes, one per line,
// plus the dictionary mapping token runes back to lines.
func linesToTokens(text1, text2 string) ([]rune, []rune, []string) {
	dict := newTokenDict()
	tokens1 := dict.munge(text1, nextLine, maxTokensText1)
	tokens2 := dict.munge(text2, nextLine, maxTokensTotal)
	return tokens1, tokens2, dict.tokens
}

// wordsToTokens reduces two texts to strings of token runes, one per
// whitespace or non-whitespace run, plus the dictionary.
func wordsToTokens(text1, text2 string) ([]rune, []rune, []string) {
	dict := newTokenDict()
	tokens1 := dict.munge(text1, nextWord, maxTokensText1)
	tokens2 := dict.munge(text2, nextWord, maxTokensTotal)
	return tokens1, tokens2, dict.tokens
}

// tokensToText rehydrates the text in a diff from token runes to the
// original text.
func tokensToText(diffs []Diff, dict []string) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, d := range diffs {
		var buf bytes.Buffer
		for _, r := range d.Text {
			_, _ = buf.WriteString(dict[tokenIndex(r)])
		}
		d.Text = buf.String()
		hydrated = append(hydrated, d)
	}
	return hydrated
}
