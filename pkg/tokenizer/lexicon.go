package tokenizer

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/vellum"
)

//go:embed resources/*.txt
var resourceFS embed.FS

// Lexicon set names, used by the lexmgr tool and the per-set accessors.
const (
	SetAbbreviationPeriod = "abbreviation-period"
	SetApostropheFront    = "apostrophe-front"
	SetConcatWords        = "concat-words"
	SetHyphenPrefix       = "hyphen-prefix"
	SetHyphenSuffix       = "hyphen-suffix"
)

var setResources = map[string]string{
	SetAbbreviationPeriod: "resources/abbreviation_period.txt",
	SetApostropheFront:    "resources/apostrophe_front.txt",
	SetConcatWords:        "resources/concat_words.txt",
	SetHyphenPrefix:       "resources/hyphen_prefix.txt",
	SetHyphenSuffix:       "resources/hyphen_suffix.txt",
}

// Lexicon holds the fixed word sets behind the merge and split policies,
// each compiled into an in-memory FST. The FSTs are immutable after
// construction, so lookups need no locking.
type Lexicon struct {
	abbreviation    *vellum.FST
	apostropheFront *vellum.FST
	concatWords     *vellum.FST
	hyphenPrefix    *vellum.FST
	hyphenSuffix    *vellum.FST
}

// NewLexicon compiles the embedded resource files into FSTs.
func NewLexicon() (*Lexicon, error) {
	l := &Lexicon{}
	for name, fst := range map[string]**vellum.FST{
		SetAbbreviationPeriod: &l.abbreviation,
		SetApostropheFront:    &l.apostropheFront,
		SetConcatWords:        &l.concatWords,
		SetHyphenPrefix:       &l.hyphenPrefix,
		SetHyphenSuffix:       &l.hyphenSuffix,
	} {
		built, err := buildSetFST(name)
		if err != nil {
			l.Close()
			return nil, fmt.Errorf("lexicon set %s: %w", name, err)
		}
		*fst = built
	}
	return l, nil
}

// buildSetFST reads one resource file and compiles it into an FST.
// For the concat-words set the value carries the encoded cut points;
// for every other set the value is unused.
func buildSetFST(name string) (*vellum.FST, error) {
	data, err := resourceFS.ReadFile(setResources[name])
	if err != nil {
		return nil, err
	}

	entries := make(map[string]uint64)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, value := parseSetLine(name, strings.ToLower(line))
		entries[word] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sortedWords := make([]string, 0, len(entries))
	for word := range entries {
		sortedWords = append(sortedWords, word)
	}
	sort.Strings(sortedWords)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for _, word := range sortedWords {
		if err := builder.Insert([]byte(word), entries[word]); err != nil {
			builder.Close()
			return nil, err
		}
	}
	if err := builder.Close(); err != nil {
		return nil, err
	}

	return vellum.Load(buf.Bytes())
}

// parseSetLine turns one resource line into an FST key and value.
// Concat-words lines use a space for each cut point ("gon na"); the
// key is the fused form and the value encodes the cuts.
func parseSetLine(name, line string) (string, uint64) {
	if name != SetConcatWords {
		return line, 0
	}

	var b strings.Builder
	var cuts []int
	n := 0
	for _, r := range line {
		if r == ' ' {
			cuts = append(cuts, n)
			continue
		}
		b.WriteRune(r)
		n++
	}
	return b.String(), encodeCuts(cuts)
}

// encodeCuts packs interior cut indices into a uint64, one per byte,
// low byte first, zero-terminated. A cut index is always at least 1,
// so zero is free to mean "no more cuts". Entries are short informal
// words, far below the eight-cut ceiling.
func encodeCuts(cuts []int) uint64 {
	var v uint64
	for i, c := range cuts {
		if i == 8 {
			break
		}
		v |= uint64(c&0xFF) << (8 * i)
	}
	return v
}

// decodeCuts unpacks a value produced by encodeCuts.
func decodeCuts(v uint64) []int {
	var cuts []int
	for v != 0 {
		cuts = append(cuts, int(v&0xFF))
		v >>= 8
	}
	return cuts
}

// AbbreviationPeriod checks if word is an abbreviation that absorbs a
// trailing period (case-insensitive).
func (l *Lexicon) AbbreviationPeriod(word string) bool {
	return fstContains(l.abbreviation, word)
}

// ApostropheFront checks if word reattaches to a preceding lone
// apostrophe (case-insensitive).
func (l *Lexicon) ApostropheFront(word string) bool {
	return fstContains(l.apostropheFront, word)
}

// HyphenPrefix checks if word is a prefix that keeps its hyphen
// (case-insensitive).
func (l *Lexicon) HyphenPrefix(word string) bool {
	return fstContains(l.hyphenPrefix, word)
}

// HyphenSuffix checks if word is a suffix that keeps its hyphen
// (case-insensitive).
func (l *Lexicon) HyphenSuffix(word string) bool {
	return fstContains(l.hyphenSuffix, word)
}

// ConcatCuts returns the interior cut points for a fused informal word,
// or nil when word is not in the concat-words set (case-insensitive).
func (l *Lexicon) ConcatCuts(word string) []int {
	v, exists, err := l.concatWords.Get([]byte(strings.ToLower(word)))
	if err != nil || !exists {
		return nil
	}
	return decodeCuts(v)
}

func fstContains(fst *vellum.FST, word string) bool {
	_, exists, _ := fst.Get([]byte(strings.ToLower(word)))
	return exists
}

// Sets returns the lexicon set names in a stable order.
func (l *Lexicon) Sets() []string {
	names := make([]string, 0, len(setResources))
	for name := range setResources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contains checks if a word exists in the named set (case-insensitive).
func (l *Lexicon) Contains(set, word string) (bool, error) {
	fst, err := l.fstFor(set)
	if err != nil {
		return false, err
	}
	return fstContains(fst, word), nil
}

// Words returns all entries of the named set in key order. Concat-words
// entries come back in their fused form.
func (l *Lexicon) Words(set string) ([]string, error) {
	fst, err := l.fstFor(set)
	if err != nil {
		return nil, err
	}

	var words []string
	itr, err := fst.Iterator(nil, nil)
	for err == nil {
		key, _ := itr.Current()
		words = append(words, string(key))
		err = itr.Next()
	}
	if err != vellum.ErrIteratorDone {
		return nil, err
	}
	return words, nil
}

// WordCount returns the number of entries in the named set, or the
// total across all sets when set is empty.
func (l *Lexicon) WordCount(set string) (int, error) {
	if set == "" {
		total := 0
		for _, name := range l.Sets() {
			fst, err := l.fstFor(name)
			if err != nil {
				return 0, err
			}
			total += fst.Len()
		}
		return total, nil
	}

	fst, err := l.fstFor(set)
	if err != nil {
		return 0, err
	}
	return fst.Len(), nil
}

func (l *Lexicon) fstFor(set string) (*vellum.FST, error) {
	switch set {
	case SetAbbreviationPeriod:
		return l.abbreviation, nil
	case SetApostropheFront:
		return l.apostropheFront, nil
	case SetConcatWords:
		return l.concatWords, nil
	case SetHyphenPrefix:
		return l.hyphenPrefix, nil
	case SetHyphenSuffix:
		return l.hyphenSuffix, nil
	}
	return nil, fmt.Errorf("unknown lexicon set %q", set)
}

// Close releases the FST resources.
func (l *Lexicon) Close() error {
	var firstErr error
	for _, fst := range []*vellum.FST{
		l.abbreviation, l.apostropheFront, l.concatWords, l.hyphenPrefix, l.hyphenSuffix,
	} {
		if fst == nil {
			continue
		}
		if err := fst.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
