package tokenizer

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Character class tables. These are built once at init and never
// mutated, so all predicates below are safe for concurrent use.
var (
	singleQuoteTable = rangetable.New('\'', '`', '‘', '’', '‚', '‛')
	doubleQuoteTable = rangetable.New('"', '«', '»', '“', '”', '„', '‟')
	hyphenTable      = rangetable.New('-', '‐', '‑', '‒', '–', '—', '―')
	bracketTable     = rangetable.New('(', ')', '[', ']', '{', '}', '<', '>')
	finalMarkTable   = rangetable.New('.', '!', '?', '…', '‼', '⁇', '⁈', '⁉', '。', '！', '？')

	// Arrows, Supplemental Arrows-A and Supplemental Arrows-B.
	arrowTable = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x2190, Hi: 0x21FF, Stride: 1},
			{Lo: 0x27F0, Hi: 0x27FF, Stride: 1},
			{Lo: 0x2900, Hi: 0x297F, Stride: 1},
		},
	}

	// '#' counts as currency so that "#1" splits the same way "$1" does.
	currencyTable = rangetable.Merge(unicode.Sc, rangetable.New('#'))

	// Symbols that always split out of a span, wherever they appear.
	delimiterTable = rangetable.Merge(
		rangetable.New(',', ';', ':', '~', '&', '|', '/'),
		bracketTable,
		arrowTable,
		doubleQuoteTable,
		hyphenTable,
	)
)

// IsSeparator reports whether r ends a span at the driver level.
// Whitespace plus invisible control and format characters (zero-width
// spaces, BOMs, directional marks) all separate; they never appear
// inside a token.
func IsSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r)
}

// IsAlnum reports whether r is a letter or a number in any script.
func IsAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsSymbolEdge reports whether r is a single quote or a final mark,
// the classes that split only at span edges or in runs.
func IsSymbolEdge(r rune) bool {
	return isSingleQuote(r) || isFinalMark(r)
}

// IsCurrencyLike reports whether r is a currency sign or '#'.
func IsCurrencyLike(r rune) bool {
	return unicode.Is(currencyTable, r)
}

func isDelimiter(r rune) bool   { return unicode.Is(delimiterTable, r) }
func isSingleQuote(r rune) bool { return unicode.Is(singleQuoteTable, r) }
func isHyphen(r rune) bool      { return unicode.Is(hyphenTable, r) }
func isFinalMark(r rune) bool   { return unicode.Is(finalMarkTable, r) }
func isPunct(r rune) bool       { return unicode.IsPunct(r) }

// alnumRun reports whether rs[i:j] is entirely alphanumeric.
func alnumRun(rs []rune, i, j int) bool {
	for ; i < j; i++ {
		if !IsAlnum(rs[i]) {
			return false
		}
	}
	return true
}

// digitRun reports whether rs[i:j] is in bounds, non-empty, and all
// decimal digits.
func digitRun(rs []rune, i, j int) bool {
	if i < 0 || i >= j || j > len(rs) {
		return false
	}
	for ; i < j; i++ {
		if !unicode.IsDigit(rs[i]) {
			return false
		}
	}
	return true
}

// isDigitString reports whether s is non-empty and all decimal digits.
func isDigitString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isAlnumString reports whether s is non-empty and all alphanumeric.
func isAlnumString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsAlnum(r) {
			return false
		}
	}
	return true
}

// isUpper reports whether s contains at least one uppercase letter and
// no lowercase or titlecase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// lastSequenceIndex returns the end (exclusive) of the maximal symbol
// run starting at curr within rs[curr:end]. Final marks extend each
// other's runs ("?!", "..!"), any other rune only repeats itself
// ("--", "**").
func lastSequenceIndex(rs []rune, curr, end int) int {
	c := rs[curr]
	finalMark := isFinalMark(c)
	for j := curr + 1; j < end; j++ {
		if finalMark {
			if !isFinalMark(rs[j]) {
				return j
			}
		} else if rs[j] != c {
			return j
		}
	}
	return end
}
