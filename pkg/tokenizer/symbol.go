package tokenizer

import "unicode"

// symbolClass partitions the splittable symbols. The classes are
// disjoint; classifySymbol returns the first match.
type symbolClass int

const (
	symbolNone symbolClass = iota
	// symbolDelimiter splits wherever it appears: , ; : ~ & | /
	// plus brackets, arrows, double quotes, and hyphens.
	symbolDelimiter
	// symbolEdge splits only at span edges, in runs, or next to other
	// punctuation: single quotes and final marks.
	symbolEdge
	// symbolCurrency splits only before a digit or at the span end:
	// currency signs and '#'.
	symbolCurrency
)

func classifySymbol(r rune) symbolClass {
	switch {
	case isDelimiter(r):
		return symbolDelimiter
	case IsSymbolEdge(r):
		return symbolEdge
	case IsCurrencyLike(r):
		return symbolCurrency
	}
	return symbolNone
}

// spanDigit reports whether i is inside [begin, end) and rs[i] is a
// decimal digit. Lookarounds never leave the current span.
func spanDigit(rs []rune, begin, end, i int) bool {
	return begin <= i && i < end && unicode.IsDigit(rs[i])
}

// spanDigitRun reports whether rs[i:j] lies inside [begin, end), is
// non-empty, and is all decimal digits.
func spanDigitRun(rs []rune, begin, end, i, j int) bool {
	if i < begin || i >= j || j > end {
		return false
	}
	for ; i < j; i++ {
		if !unicode.IsDigit(rs[i]) {
			return false
		}
	}
	return true
}

// skipSymbol reports whether the symbol at rs[curr] is glued to the
// digits around it and must not split: decimal points, leading signs,
// thousands separators, clock colons, clipped years.
func skipSymbol(rs []rune, begin, end, curr int) bool {
	switch r := rs[curr]; {
	case r == '.' || r == '+':
		// 3.14  .38  +1
		return spanDigit(rs, begin, end, curr+1)
	case r == '-':
		// -1, but only at the span start; interior hyphens are the
		// merge policies' business.
		return curr == begin && spanDigit(rs, begin, end, curr+1)
	case r == ',':
		// 1,000,000: a digit before and exactly three digits after.
		return spanDigit(rs, begin, end, curr-1) &&
			spanDigitRun(rs, begin, end, curr+1, curr+4) &&
			!spanDigit(rs, begin, end, curr+4)
	case r == ':':
		// 10:30  1:2
		return spanDigit(rs, begin, end, curr-1) && spanDigit(rs, begin, end, curr+1)
	case isSingleQuote(r):
		// '97: exactly two digits after.
		return spanDigitRun(rs, begin, end, curr+1, curr+3) &&
			!spanDigit(rs, begin, end, curr+3)
	}
	return false
}

// splitRun decides whether the symbol run rs[i:j] splits out of
// rs[begin:end], per its class's position rule.
func splitRun(rs []rune, begin, end, i, j int, class symbolClass) bool {
	switch class {
	case symbolDelimiter:
		return true
	case symbolEdge:
		return i+1 < j || i == begin || j == end ||
			isPunct(rs[i-1]) || isPunct(rs[j])
	case symbolCurrency:
		return i+1 < j || j == end || spanDigit(rs, begin, end, j)
	}
	return false
}

// tokenizeSymbol walks rs[begin:end] for the first symbol run that
// should split out, emits the pieces around it, and re-submits the
// remainder. Reports whether a split happened; when it reports false
// the span has no splittable symbol and the caller adds it verbatim.
func (t *Tokenizer) tokenizeSymbol(sk *sink, rs []rune, begin, end int) bool {
	for i := begin; i < end; i++ {
		if skipSymbol(rs, begin, end, i) {
			continue
		}
		class := classifySymbol(rs[i])
		if class == symbolNone {
			continue
		}
		j := lastSequenceIndex(rs, i, end)
		if !splitRun(rs, begin, end, i, j, class) {
			continue
		}
		t.tokenizeAux(sk, rs, begin, i)
		sk.add(string(rs[i:j]), i, j)
		t.tokenizeAux(sk, rs, j, end)
		return true
	}
	return false
}
