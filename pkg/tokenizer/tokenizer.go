package tokenizer

import (
	"sync"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheSize is the maximum number of entries in the span cache. Spans
// are short whitespace-delimited chunks, so at ~100 bytes per entry
// the full cache uses a few megabytes.
const CacheSize = 65536

// Tokenizer splits English text into linguistic tokens: contraction
// suffixes come apart ("don't" to "do", "n't"), abbreviations keep
// their periods ("etc."), emoticons, URLs, and email addresses stay
// whole, and every token carries rune offsets into the input.
//
// A Tokenizer is safe for concurrent use. The lexicon and rule tables
// are immutable and the span cache is internally synchronized.
type Tokenizer struct {
	lex   *Lexicon
	cache *lru.Cache[string, TokenList]
}

// New creates a tokenizer with the embedded lexicon and span caching
// enabled.
func New() (*Tokenizer, error) {
	lex, err := NewLexicon()
	if err != nil {
		return nil, err
	}
	cache, err := lru.New[string, TokenList](CacheSize)
	if err != nil {
		lex.Close()
		return nil, err
	}
	return &Tokenizer{lex: lex, cache: cache}, nil
}

// NewNoCache creates a tokenizer without span caching. Use this when
// memory is constrained or spans rarely repeat.
func NewNoCache() (*Tokenizer, error) {
	lex, err := NewLexicon()
	if err != nil {
		return nil, err
	}
	return &Tokenizer{lex: lex}, nil
}

var (
	defaultOnce sync.Once
	defaultTok  *Tokenizer
)

// Tokenize splits text using a shared default tokenizer. It never
// fails: empty or all-separator input yields an empty list.
func Tokenize(text string) TokenList {
	defaultOnce.Do(func() {
		tok, err := NewNoCache()
		if err != nil {
			// The embedded resources are compiled into the binary; a
			// failure here means a corrupt build.
			panic("tokenizer: " + err.Error())
		}
		defaultTok = tok
	})
	return defaultTok.Tokenize(text)
}

// Tokenize splits text on separator runs and decomposes each remaining
// span into tokens. Offsets in the result are rune indices into text.
func (t *Tokenizer) Tokenize(text string) TokenList {
	rs := []rune(text)
	sk := &sink{lex: t.lex, tokens: TokenList{}}

	begin := -1
	for i, r := range rs {
		if IsSeparator(r) {
			if begin >= 0 {
				t.tokenizeSpan(sk, rs, begin, i)
				begin = -1
			}
			continue
		}
		if begin < 0 {
			begin = i
		}
	}
	if begin >= 0 {
		t.tokenizeSpan(sk, rs, begin, len(rs))
	}

	return sk.tokens
}

// tokenizeSpan decomposes one separator-free span, memoizing the
// decomposition when the cache is enabled. Cached pieces are replayed
// through the sink rather than appended raw so that policies reaching
// back to earlier tokens (the No.-before-number merge) behave
// identically with and without the cache.
func (t *Tokenizer) tokenizeSpan(sk *sink, rs []rune, begin, end int) {
	if t.cache == nil {
		t.tokenizeAux(sk, rs, begin, end)
		return
	}

	span := string(rs[begin:end])
	pieces, ok := t.cache.Get(span)
	if !ok {
		spanSink := &sink{lex: t.lex, tokens: TokenList{}}
		t.tokenizeAux(spanSink, []rune(span), 0, end-begin)
		pieces = spanSink.tokens
		t.cache.Add(span, pieces)
	}

	for _, p := range pieces {
		sk.add(p.Text, begin+p.Start, begin+p.End)
	}
}

// tokenizeAux decomposes rs[begin:end]: the trivial whole-span check,
// then the pattern rules, then the symbol scanner, and finally the
// span verbatim. Reports whether any token was submitted.
func (t *Tokenizer) tokenizeAux(sk *sink, rs []rune, begin, end int) bool {
	if begin >= end {
		return false
	}
	if t.tokenizeTrivial(sk, rs, begin, end) {
		return true
	}
	if t.tokenizeRegex(sk, rs, begin, end) {
		return true
	}
	if t.tokenizeSymbol(sk, rs, begin, end) {
		return true
	}
	return sk.add(string(rs[begin:end]), begin, end)
}

// tokenizeTrivial handles spans that need no inspection: a single rune
// or an unbroken alphanumeric run.
func (t *Tokenizer) tokenizeTrivial(sk *sink, rs []rune, begin, end int) bool {
	if end-begin == 1 || alnumRun(rs, begin, end) {
		sk.add(string(rs[begin:end]), begin, end)
		return true
	}
	return false
}

// tokenizeRegex tries the pattern rules in order against rs[begin:end].
// On a match the protected group becomes one token and the unmatched
// prefix and suffix are re-submitted. Reports whether a rule fired.
func (t *Tokenizer) tokenizeRegex(sk *sink, rs []rune, begin, end int) bool {
	span := string(rs[begin:end])
	for _, rule := range patternRules {
		m := rule.re.FindStringSubmatchIndex(span)
		if m == nil {
			continue
		}
		lo, hi := m[2*rule.group], m[2*rule.group+1]
		if lo < 0 || lo == hi {
			continue
		}
		gb := begin + runeIndex(span, lo)
		ge := begin + runeIndex(span, hi)

		switch rule.action {
		case actionGroup:
			t.tokenizeAux(sk, rs, begin, gb)
			sk.add(string(rs[gb:ge]), gb, ge)
			t.tokenizeAux(sk, rs, ge, end)
			return true

		case actionHyperlink:
			// Everything from the protocol onward is the address.
			mb := begin + runeIndex(span, m[0])
			t.tokenizeAux(sk, rs, begin, mb)
			sk.add(string(rs[mb:end]), mb, end)
			return true

		case actionContraction:
			// A bare n't-style suffix is already minimal; matching it
			// again would peel off the n.
			if m[0] == 0 && ge == end && unicode.ToLower(rs[begin]) == 'n' {
				continue
			}
			t.tokenizeAux(sk, rs, begin, gb)
			sk.add(string(rs[gb:ge]), gb, ge)
			t.tokenizeAux(sk, rs, ge, end)
			return true
		}
	}
	return false
}

// Close releases the lexicon resources.
func (t *Tokenizer) Close() error {
	return t.lex.Close()
}

// LexiconWordCount returns the total number of lexicon entries.
func (t *Tokenizer) LexiconWordCount() int {
	n, _ := t.lex.WordCount("")
	return n
}

// ClearCache clears the span cache.
func (t *Tokenizer) ClearCache() {
	if t.cache != nil {
		t.cache.Purge()
	}
}

// CacheSize returns the number of cached spans (0 if cache is disabled).
func (t *Tokenizer) CacheSize() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}

// CacheEnabled returns true if span caching is enabled.
func (t *Tokenizer) CacheEnabled() bool {
	return t.cache != nil
}
