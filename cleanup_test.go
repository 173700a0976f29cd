package strictdiff

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffCleanupMerge(t *testing.T) {
	tests := []struct {
		Name     string
		Diffs    []Diff
		Expected []Diff
	}{
		{
			"Null case",
			[]Diff{},
			[]Diff{},
		},
		{
			"No Diff case",
			[]Diff{
				{OpEqual, "a"},
				{OpDelete, "b"},
				{OpInsert, "c"},
			},
			[]Diff{
				{OpEqual, "a"},
				{OpDelete, "b"},
				{OpInsert, "c"},
			},
		},
		{
			"Merge equalities",
			[]Diff{
				{OpEqual, "a"},
				{OpEqual, "b"},
				{OpEqual, "c"},
			},
			[]Diff{
				{OpEqual, "abc"},
			},
		},
		{
			"Merge deletions",
			[]Diff{
				{OpDelete, "a"},
				{OpDelete, "b"},
				{OpDelete, "c"},
			},
			[]Diff{
				{OpDelete, "abc"},
			},
		},
		{
			"Merge insertions",
			[]Diff{
				{OpInsert, "a"},
				{OpInsert, "b"},
				{OpInsert, "c"},
			},
			[]Diff{
				{OpInsert, "abc"},
			},
		},
		{
			"Merge interweave",
			[]Diff{
				{OpDelete, "a"},
				{OpInsert, "b"},
				{OpDelete, "c"},
				{OpInsert, "d"},
				{OpEqual, "e"},
				{OpEqual, "f"},
			},
			[]Diff{
				{OpDelete, "ac"},
				{OpInsert, "bd"},
				{OpEqual, "ef"},
			},
		},
		{
			"Prefix and suffix detection",
			[]Diff{
				{OpDelete, "a"},
				{OpInsert, "abc"},
				{OpDelete, "dc"},
			},
			[]Diff{
				{OpEqual, "a"},
				{OpDelete, "d"},
				{OpInsert, "b"},
				{OpEqual, "c"},
			},
		},
		{
			"Prefix and suffix detection with equalities",
			[]Diff{
				{OpEqual, "x"},
				{OpDelete, "a"},
				{OpInsert, "abc"},
				{OpDelete, "dc"},
				{OpEqual, "y"},
			},
			[]Diff{
				{OpEqual, "xa"},
				{OpDelete, "d"},
				{OpInsert, "b"},
				{OpEqual, "cy"},
			},
		},
		{
			"Same test as above but with unicode (ā will appear in diffs with at least 257 unique lines)",
			[]Diff{
				{OpEqual, "x"},
				{OpDelete, "ā"},
				{OpInsert, "ābc"},
				{OpDelete, "dc"},
				{OpEqual, "y"},
			},
			[]Diff{
				{OpEqual, "xā"},
				{OpDelete, "d"},
				{OpInsert, "b"},
				{OpEqual, "cy"},
			},
		},
		{
			"Slide edit left",
			[]Diff{
				{OpEqual, "a"},
				{OpInsert, "ba"},
				{OpEqual, "c"},
			},
			[]Diff{
				{OpInsert, "ab"},
				{OpEqual, "ac"},
			},
		},
		{
			"Slide edit right",
			[]Diff{
				{OpEqual, "c"},
				{OpInsert, "ab"},
				{OpEqual, "a"},
			},
			[]Diff{
				{OpEqual, "ca"},
				{OpInsert, "ba"},
			},
		},
		{
			"Slide edit left recursive",
			[]Diff{
				{OpEqual, "a"},
				{OpDelete, "b"},
				{OpEqual, "c"},
				{OpDelete, "ac"},
				{OpEqual, "x"},
			},
			[]Diff{
				{OpDelete, "abc"},
				{OpEqual, "acx"},
			},
		},
		{
			"Slide edit right recursive",
			[]Diff{
				{OpEqual, "x"},
				{OpDelete, "ca"},
				{OpEqual, "c"},
				{OpDelete, "b"},
				{OpEqual, "a"},
			},
			[]Diff{
				{OpEqual, "xca"},
				{OpDelete, "cba"},
			},
		},
	}
	config := NewDefaultConfig()
	for i, test := range tests {
		actual := config.DiffCleanupMerge(test.Diffs)
		assert.Equal(t, test.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}

func TestDiffCleanupMergeIdempotent(t *testing.T) {
	tests := [][]Diff{
		{
			{OpEqual, "x"},
			{OpDelete, "a"},
			{OpInsert, "abc"},
			{OpDelete, "dc"},
			{OpEqual, "y"},
		},
		{
			{OpDelete, "a"},
			{OpInsert, "b"},
			{OpDelete, "c"},
			{OpInsert, "d"},
			{OpEqual, "e"},
		},
		{
			{OpEqual, "a"},
			{OpInsert, "ba"},
			{OpEqual, "c"},
		},
	}
	config := NewDefaultConfig()
	for i, test := range tests {
		once := config.DiffCleanupMerge(test)
		again := config.DiffCleanupMerge(append([]Diff(nil), once...))
		assert.Equal(t, once, again, fmt.Sprintf("Test case #%d", i))
	}
}

func TestDiffCleanupSemanticLossless(t *testing.T) {
	tests := []struct {
		Name     string
		Diffs    []Diff
		Expected []Diff
	}{
		{
			"Null case",
			[]Diff{},
			[]Diff{},
		},
		{
			"Blank lines",
			[]Diff{
				{OpEqual, "AAA\r\n\r\nBBB"},
				{OpInsert, "\r\nDDD\r\n\r\nBBB"},
				{OpEqual, "\r\nEEE"},
			},
			[]Diff{
				{OpEqual, "AAA\r\n\r\n"},
				{OpInsert, "BBB\r\nDDD\r\n\r\n"},
				{OpEqual, "BBB\r\nEEE"},
			},
		},
		{
			"Line boundaries",
			[]Diff{
				{OpEqual, "AAA\r\nBBB"},
				{OpInsert, " DDD\r\nBBB"},
				{OpEqual, " EEE"},
			},
			[]Diff{
				{OpEqual, "AAA\r\n"},
				{OpInsert, "BBB DDD\r\n"},
				{OpEqual, "BBB EEE"},
			},
		},
		{
			"Word boundaries",
			[]Diff{
				{OpEqual, "The c"},
				{OpInsert, "ow and the c"},
				{OpEqual, "at."},
			},
			[]Diff{
				{OpEqual, "The "},
				{OpInsert, "cow and the "},
				{OpEqual, "cat."},
			},
		},
		{
			"Alphanumeric boundaries",
			[]Diff{
				{OpEqual, "The-c"},
				{OpInsert, "ow-and-the-c"},
				{OpEqual, "at."},
			},
			[]Diff{
				{OpEqual, "The-"},
				{OpInsert, "cow-and-the-"},
				{OpEqual, "cat."},
			},
		},
		{
			"Hitting the start",
			[]Diff{
				{OpEqual, "a"},
				{OpDelete, "a"},
				{OpEqual, "ax"},
			},
			[]Diff{
				{OpDelete, "a"},
				{OpEqual, "aax"},
			},
		},
		{
			"Hitting the end",
			[]Diff{
				{OpEqual, "xa"},
				{OpDelete, "a"},
				{OpEqual, "a"},
			},
			[]Diff{
				{OpEqual, "xaa"},
				{OpDelete, "a"},
			},
		},
		{
			"Sentence boundaries",
			[]Diff{
				{OpEqual, "The xxx. The "},
				{OpInsert, "zzz. The "},
				{OpEqual, "yyy."},
			},
			[]Diff{
				{OpEqual, "The xxx."},
				{OpInsert, " The zzz."},
				{OpEqual, " The yyy."},
			},
		},
		{
			"UTF-8 strings",
			[]Diff{
				{OpEqual, "The ♕. The "},
				{OpInsert, "♔. The "},
				{OpEqual, "♖."},
			},
			[]Diff{
				{OpEqual, "The ♕."},
				{OpInsert, " The ♔."},
				{OpEqual, " The ♖."},
			},
		},
		{
			"Rune boundaries",
			[]Diff{
				{OpEqual, "♕♕"},
				{OpInsert, "♔♔"},
				{OpEqual, "♖♖"},
			},
			[]Diff{
				{OpEqual, "♕♕"},
				{OpInsert, "♔♔"},
				{OpEqual, "♖♖"},
			},
		},
	}
	config := NewDefaultConfig()
	for i, test := range tests {
		actual := config.DiffCleanupSemanticLossless(test.Diffs)
		assert.Equal(t, test.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}

func TestDiffCleanupSemantic(t *testing.T) {
	tests := []struct {
		Name     string
		Diffs    []Diff
		Expected []Diff
	}{
		{
			"Null case",
			[]Diff{},
			[]Diff{},
		},
		{
			"No elimination #1",
			[]Diff{
				{OpDelete, "ab"},
				{OpInsert, "cd"},
				{OpEqual, "12"},
				{OpDelete, "e"},
			},
			[]Diff{
				{OpDelete, "ab"},
				{OpInsert, "cd"},
				{OpEqual, "12"},
				{OpDelete, "e"},
			},
		},
		{
			"No elimination #2",
			[]Diff{
				{OpDelete, "abc"},
				{OpInsert, "ABC"},
				{OpEqual, "1234"},
				{OpDelete, "wxyz"},
			},
			[]Diff{
				{OpDelete, "abc"},
				{OpInsert, "ABC"},
				{OpEqual, "1234"},
				{OpDelete, "wxyz"},
			},
		},
		{
			"No elimination #3",
			[]Diff{
				{OpEqual, "2016-09-01T03:07:1"},
				{OpInsert, "5.15"},
				{OpEqual, "4"},
				{OpDelete, "."},
				{OpEqual, "80"},
				{OpInsert, "0"},
				{OpEqual, "78"},
				{OpDelete, "3074"},
				{OpEqual, "1Z"},
			},
			[]Diff{
				{OpEqual, "2016-09-01T03:07:1"},
				{OpInsert, "5.15"},
				{OpEqual, "4"},
				{OpDelete, "."},
				{OpEqual, "80"},
				{OpInsert, "0"},
				{OpEqual, "78"},
				{OpDelete, "3074"},
				{OpEqual, "1Z"},
			},
		},
		{
			"Simple elimination",
			[]Diff{
				{OpDelete, "a"},
				{OpEqual, "b"},
				{OpDelete, "c"},
			},
			[]Diff{
				{OpDelete, "abc"},
				{OpInsert, "b"},
			},
		},
		{
			"Backpass elimination",
			[]Diff{
				{OpDelete, "ab"},
				{OpEqual, "cd"},
				{OpDelete, "e"},
				{OpEqual, "f"},
				{OpInsert, "g"},
			},
			[]Diff{
				{OpDelete, "abcdef"},
				{OpInsert, "cdfg"},
			},
		},
		{
			"Multiple eliminations",
			[]Diff{
				{OpInsert, "1"},
				{OpEqual, "A"},
				{OpDelete, "B"},
				{OpInsert, "2"},
				{OpEqual, "_"},
				{OpInsert, "1"},
				{OpEqual, "A"},
				{OpDelete, "B"},
				{OpInsert, "2"},
			},
			[]Diff{
				{OpDelete, "AB_AB"},
				{OpInsert, "1A2_1A2"},
			},
		},
		{
			"Word boundaries",
			[]Diff{
				{OpEqual, "The c"},
				{OpDelete, "ow and the c"},
				{OpEqual, "at."},
			},
			[]Diff{
				{OpEqual, "The "},
				{OpDelete, "cow and the "},
				{OpEqual, "cat."},
			},
		},
		{
			"No overlap elimination",
			[]Diff{
				{OpDelete, "abcxx"},
				{OpInsert, "xxdef"},
			},
			[]Diff{
				{OpDelete, "abcxx"},
				{OpInsert, "xxdef"},
			},
		},
		{
			"Overlap elimination",
			[]Diff{
				{OpDelete, "abcxxx"},
				{OpInsert, "xxxdef"},
			},
			[]Diff{
				{OpDelete, "abc"},
				{OpEqual, "xxx"},
				{OpInsert, "def"},
			},
		},
		{
			"Reverse overlap elimination",
			[]Diff{
				{OpDelete, "xxxabc"},
				{OpInsert, "defxxx"},
			},
			[]Diff{
				{OpInsert, "def"},
				{OpEqual, "xxx"},
				{OpDelete, "abc"},
			},
		},
		{
			"Two overlap eliminations",
			[]Diff{
				{OpDelete, "abcd1212"},
				{OpInsert, "1212efghi"},
				{OpEqual, "----"},
				{OpDelete, "A3"},
				{OpInsert, "3BC"},
			},
			[]Diff{
				{OpDelete, "abcd"},
				{OpEqual, "1212"},
				{OpInsert, "efghi"},
				{OpEqual, "----"},
				{OpDelete, "A"},
				{OpEqual, "3"},
				{OpInsert, "BC"},
			},
		},
		{
			"Elimination keeps boundaries aligned",
			[]Diff{
				{OpEqual, "James McCarthy "},
				{OpDelete, "close to "},
				{OpEqual, "sign"},
				{OpDelete, "ing"},
				{OpInsert, "s"},
				{OpEqual, " new "},
				{OpDelete, "E"},
				{OpInsert, "fi"},
				{OpEqual, "ve"},
				{OpInsert, "-yea"},
				{OpEqual, "r"},
				{OpDelete, "ton"},
				{OpEqual, " deal"},
				{OpInsert, " at Everton"},
			},
			[]Diff{
				{OpEqual, "James McCarthy "},
				{OpDelete, "close to "},
				{OpEqual, "sign"},
				{OpDelete, "ing"},
				{OpInsert, "s"},
				{OpEqual, " new "},
				{OpInsert, "five-year deal at "},
				{OpEqual, "Everton"},
				{OpDelete, " deal"},
			},
		},
		{
			"Mixed-script elimination",
			[]Diff{
				{OpInsert, "星球大戰：新的希望 "},
				{OpEqual, "star wars: "},
				{OpDelete, "episodio iv - un"},
				{OpEqual, "a n"},
				{OpDelete, "u"},
				{OpEqual, "e"},
				{OpDelete, "va"},
				{OpInsert, "w"},
				{OpEqual, " "},
				{OpDelete, "es"},
				{OpInsert, "ho"},
				{OpEqual, "pe"},
				{OpDelete, "ranza"},
			},
			[]Diff{
				{OpInsert, "星球大戰：新的希望 "},
				{OpEqual, "star wars: "},
				{OpDelete, "episodio iv - una nueva esperanza"},
				{OpInsert, "a new hope"},
			},
		},
		{
			"Multibyte runes survive the overlap scan",
			[]Diff{
				{OpInsert, "킬러 인 "},
				{OpEqual, "리커버리"},
				{OpDelete, " 보이즈"},
			},
			[]Diff{
				{OpInsert, "킬러 인 "},
				{OpEqual, "리커버리"},
				{OpDelete, " 보이즈"},
			},
		},
	}
	config := NewDefaultConfig()
	for i, test := range tests {
		actual := config.DiffCleanupSemantic(test.Diffs)
		assert.Equal(t, test.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}

func TestDiffCleanupEfficiency(t *testing.T) {
	tests := []struct {
		Name     string
		Diffs    []Diff
		EditCost int
		Expected []Diff
	}{
		{
			"Null case",
			[]Diff{},
			4,
			[]Diff{},
		},
		{
			"No elimination",
			[]Diff{
				{OpDelete, "ab"},
				{OpInsert, "12"},
				{OpEqual, "wxyz"},
				{OpDelete, "cd"},
				{OpInsert, "34"},
			},
			4,
			[]Diff{
				{OpDelete, "ab"},
				{OpInsert, "12"},
				{OpEqual, "wxyz"},
				{OpDelete, "cd"},
				{OpInsert, "34"},
			},
		},
		{
			"Four-edit elimination",
			[]Diff{
				{OpDelete, "ab"},
				{OpInsert, "12"},
				{OpEqual, "xyz"},
				{OpDelete, "cd"},
				{OpInsert, "34"},
			},
			4,
			[]Diff{
				{OpDelete, "abxyzcd"},
				{OpInsert, "12xyz34"},
			},
		},
		{
			"Three-edit elimination",
			[]Diff{
				{OpInsert, "12"},
				{OpEqual, "x"},
				{OpDelete, "cd"},
				{OpInsert, "34"},
			},
			4,
			[]Diff{
				{OpDelete, "xcd"},
				{OpInsert, "12x34"},
			},
		},
		{
			"Backpass elimination",
			[]Diff{
				{OpDelete, "ab"},
				{OpInsert, "12"},
				{OpEqual, "xy"},
				{OpInsert, "34"},
				{OpEqual, "z"},
				{OpDelete, "cd"},
				{OpInsert, "56"},
			},
			4,
			[]Diff{
				{OpDelete, "abxyzcd"},
				{OpInsert, "12xy34z56"},
			},
		},
		{
			"High cost elimination",
			[]Diff{
				{OpDelete, "ab"},
				{OpInsert, "12"},
				{OpEqual, "wxyz"},
				{OpDelete, "cd"},
				{OpInsert, "34"},
			},
			5,
			[]Diff{
				{OpDelete, "abwxyzcd"},
				{OpInsert, "12wxyz34"},
			},
		},
	}
	for i, test := range tests {
		config := NewDefaultConfig()
		config.DiffEditCost = test.EditCost
		actual := config.DiffCleanupEfficiency(test.Diffs)
		assert.Equal(t, test.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}

func TestDiffCleanupSemanticScore(t *testing.T) {
	tests := []struct {
		Name     string
		One      string
		Two      string
		Expected int
	}{
		{"Empty side", "", "x", 6},
		{"Blank line", "one\n\n", "two", 5},
		{"Line break", "one\n", "two", 4},
		{"End of sentence", "one.", " two", 3},
		{"Whitespace", "one ", "two", 2},
		{"Non-alphanumeric", "one,", "two", 1},
		{"Interior", "one", "two", 0},
	}
	for i, test := range tests {
		actual := diffCleanupSemanticScore(test.One, test.Two)
		assert.Equal(t, test.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}
