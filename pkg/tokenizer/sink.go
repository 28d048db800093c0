package tokenizer

import (
	"strings"
	"unicode"
)

// sink accumulates the tokens of one Tokenize call and applies the
// merge and split policies as tokens arrive. Merges only ever touch
// exactly adjacent tokens, so every token's text stays equal to its
// source span and offsets stay strictly increasing.
type sink struct {
	lex    *Lexicon
	tokens TokenList
}

// add runs a candidate token through the policy chain: merge policies
// first, then split policies, then a plain append. At most one policy
// fires. Reports whether the token list changed.
func (s *sink) add(text string, begin, end int) bool {
	if text == "" || begin >= end {
		return false
	}
	if s.concat(text, begin, end) {
		return true
	}
	if s.split(text, begin, end) {
		return true
	}
	s.tokens = append(s.tokens, Token{Text: text, Start: begin, End: end})
	return true
}

// concat tries the merge policies against the previous one or two
// tokens. The No.-before-number rule is special: it merges earlier
// tokens but still reports false so the new token continues through
// the normal path.
func (s *sink) concat(text string, begin, end int) bool {
	n := len(s.tokens)

	if n >= 1 && s.tokens[n-1].End == begin {
		prev := strings.ToLower(s.tokens[n-1].Text)
		curr := strings.ToLower(text)

		if s.apostropheFront(prev, curr) || s.abbreviation(prev, curr) {
			s.tokens[n-1].Text += text
			s.tokens[n-1].End = end
			return true
		}
	}

	if n >= 2 && s.tokens[n-1].End == begin && s.tokens[n-2].End == s.tokens[n-1].Start {
		prev := strings.ToLower(s.tokens[n-2].Text)
		curr := strings.ToLower(s.tokens[n-1].Text)
		next := strings.ToLower(text)

		if s.acronym(s.tokens[n-2].Text, curr, text) || s.hyphenated(prev, curr, next) {
			s.tokens[n-2].Text += s.tokens[n-1].Text + text
			s.tokens[n-2].End = end
			s.tokens = s.tokens[:n-1]
			return true
		}
	}

	s.noDotNumber(text)
	return false
}

// apostropheFront merges a lone single quote with a following clipped
// word or clitic: ' + tis, ' + em, ' + ll.
func (s *sink) apostropheFront(prev, curr string) bool {
	p := []rune(prev)
	return len(p) == 1 && isSingleQuote(p[0]) && s.lex.ApostropheFront(curr)
}

// abbreviation merges a period into a known abbreviation or an
// alternating dotted form: etc + ., u.s.a + .
func (s *sink) abbreviation(prev, curr string) bool {
	return curr == "." && (reAbbreviation.MatchString(prev) || s.lex.AbbreviationPeriod(prev))
}

// acronym merges words joined by & | / when both sides are short or
// fully uppercase: AT + & + T, r + & + b, USA / UK.
func (s *sink) acronym(prev, curr string, next string) bool {
	c := []rune(curr)
	if len(c) != 1 || (c[0] != '&' && c[0] != '|' && c[0] != '/') {
		return false
	}
	p, x := []rune(prev), []rune(next)
	return (len(p) <= 2 && len(x) <= 2) || (isUpper(prev) && isUpper(next))
}

// hyphenated merges across a single hyphen for phone-number groups
// (800-555-1234), single-rune chains (p-u-s-h), and the known prefixes
// and suffixes (pre-season, Kafka-esque). Inputs arrive lowercased.
func (s *sink) hyphenated(prev, curr, next string) bool {
	c := []rune(curr)
	if len(c) != 1 || !isHyphen(c[0]) {
		return false
	}
	p := []rune(prev)
	x := []rune(next)
	n := len(p)

	if digitRun(p, n-3, n) && (n == 3 || (n >= 4 && isHyphen(p[n-4]))) && isDigitString(next) {
		return true
	}
	if n >= 1 && IsAlnum(p[n-1]) && (n == 1 || isHyphen(p[n-2])) && len(x) == 1 && IsAlnum(x[0]) {
		return true
	}
	return (s.lex.HyphenPrefix(prev) && isAlnumString(next)) ||
		(s.lex.HyphenSuffix(next) && isAlnumString(prev))
}

// noDotNumber absorbs the period of "No." when a number follows, as in
// "No. 5". Fires on the two previous tokens only; the number itself is
// left for the normal add path.
func (s *sink) noDotNumber(text string) {
	n := len(s.tokens)
	if n < 2 || s.tokens[n-2].End != s.tokens[n-1].Start {
		return
	}
	if s.tokens[n-1].Text != "." || strings.ToLower(s.tokens[n-2].Text) != "no" {
		return
	}
	r := []rune(text)
	if len(r) == 0 || !unicode.IsDigit(r[0]) {
		return
	}
	s.tokens[n-2].Text += s.tokens[n-1].Text
	s.tokens[n-2].End = s.tokens[n-1].End
	s.tokens = s.tokens[:n-1]
}

// split tries the split policies in order: measurement units, fused
// informal words, then a final mark wedged between words. Pieces
// re-enter add, so a piece can still merge with its left neighbor.
func (s *sink) split(text string, begin, end int) bool {
	return s.splitUnit(text, begin, end) ||
		s.splitConcatWord(text, begin, end) ||
		s.splitFinalMark(text, begin, end)
}

// splitUnit detaches a trailing measurement unit from the number it
// follows: 10kg, 5lb, 8a.m.
func (s *sink) splitUnit(text string, begin, end int) bool {
	m := reUnit.FindStringSubmatchIndex(text)
	if m == nil {
		return false
	}
	cut := begin + runeIndex(text, m[4])
	if cut <= begin || cut >= end {
		return false
	}
	rs := []rune(text)
	s.add(string(rs[:cut-begin]), begin, cut)
	s.add(string(rs[cut-begin:]), cut, end)
	return true
}

// splitConcatWord cuts a fused informal word at its lexicon cut points:
// cannot, gonna, whaddya. Lookup is case-insensitive; the pieces keep
// the original casing.
func (s *sink) splitConcatWord(text string, begin, end int) bool {
	cuts := s.lex.ConcatCuts(text)
	if len(cuts) == 0 {
		return false
	}
	rs := []rune(text)
	prev := 0
	for _, cut := range cuts {
		if cut <= prev || cut >= len(rs) {
			return false
		}
		prev = cut
	}

	i := 0
	for _, cut := range cuts {
		s.add(string(rs[i:cut]), begin+i, begin+cut)
		i = cut
	}
	s.add(string(rs[i:]), begin+i, end)
	return true
}

// splitFinalMark cuts a run of final marks wedged between two words of
// three or more letters, the typical missing-space sentence boundary:
// end.Start, really?!Yes.
func (s *sink) splitFinalMark(text string, begin, end int) bool {
	m := reFinalMarkBetween.FindStringSubmatchIndex(text)
	if m == nil {
		return false
	}
	for g := 1; g <= 3; g++ {
		lo, hi := m[2*g], m[2*g+1]
		s.add(text[lo:hi], begin+runeIndex(text, lo), begin+runeIndex(text, hi))
	}
	return true
}
