package tokenizer

import (
	"testing"
)

func TestLexicon_Lookups(t *testing.T) {
	lex, err := NewLexicon()
	if err != nil {
		t.Fatalf("Failed to load lexicon: %v", err)
	}
	defer lex.Close()

	tests := []struct {
		name     string
		lookup   func(string) bool
		word     string
		expected bool
	}{
		{"apostrophe-front", lex.ApostropheFront, "tis", true},
		{"apostrophe-front", lex.ApostropheFront, "TIS", true}, // case-insensitive
		{"apostrophe-front", lex.ApostropheFront, "em", true},
		{"apostrophe-front", lex.ApostropheFront, "ll", true},
		{"apostrophe-front", lex.ApostropheFront, "dog", false},
		{"abbreviation-period", lex.AbbreviationPeriod, "etc", true},
		{"abbreviation-period", lex.AbbreviationPeriod, "mr", true},
		{"abbreviation-period", lex.AbbreviationPeriod, "Dr", true},
		{"abbreviation-period", lex.AbbreviationPeriod, "no", false}, // only merges before numbers
		{"abbreviation-period", lex.AbbreviationPeriod, "cat", false},
		{"hyphen-prefix", lex.HyphenPrefix, "pre", true},
		{"hyphen-prefix", lex.HyphenPrefix, "anti", true},
		{"hyphen-prefix", lex.HyphenPrefix, "well", false},
		{"hyphen-suffix", lex.HyphenSuffix, "esque", true},
		{"hyphen-suffix", lex.HyphenSuffix, "free", true},
		{"hyphen-suffix", lex.HyphenSuffix, "ness", false},
	}

	for _, tt := range tests {
		if got := tt.lookup(tt.word); got != tt.expected {
			t.Errorf("%s lookup %q = %v, want %v", tt.name, tt.word, got, tt.expected)
		}
	}
}

func TestLexicon_ConcatCuts(t *testing.T) {
	lex, err := NewLexicon()
	if err != nil {
		t.Fatalf("Failed to load lexicon: %v", err)
	}
	defer lex.Close()

	tests := []struct {
		input    string
		expected []int
	}{
		{"cannot", []int{3}},
		{"Cannot", []int{3}}, // case-insensitive
		{"gonna", []int{3}},
		{"whaddya", []int{3, 5}},
		{"lemme", []int{3}},
		{"cat", nil},
		{"can", nil}, // pieces of entries are not entries
	}

	for _, tt := range tests {
		got := lex.ConcatCuts(tt.input)
		if len(got) != len(tt.expected) {
			t.Errorf("ConcatCuts(%q) = %v, want %v", tt.input, got, tt.expected)
			continue
		}
		for i, cut := range got {
			if cut != tt.expected[i] {
				t.Errorf("ConcatCuts(%q)[%d] = %d, want %d", tt.input, i, cut, tt.expected[i])
			}
		}
	}
}

func TestLexicon_Sets(t *testing.T) {
	lex, err := NewLexicon()
	if err != nil {
		t.Fatalf("Failed to load lexicon: %v", err)
	}
	defer lex.Close()

	sets := lex.Sets()
	if len(sets) != 5 {
		t.Fatalf("Sets() returned %d sets, want 5: %v", len(sets), sets)
	}

	for _, set := range sets {
		count, err := lex.WordCount(set)
		if err != nil {
			t.Errorf("WordCount(%q) failed: %v", set, err)
			continue
		}
		if count == 0 {
			t.Errorf("WordCount(%q) = 0, want > 0", set)
		}

		words, err := lex.Words(set)
		if err != nil {
			t.Errorf("Words(%q) failed: %v", set, err)
			continue
		}
		if len(words) != count {
			t.Errorf("Words(%q) returned %d entries, WordCount says %d", set, len(words), count)
		}
	}

	total, err := lex.WordCount("")
	if err != nil {
		t.Fatalf("WordCount(\"\") failed: %v", err)
	}
	if total < 100 {
		t.Errorf("Total word count = %d, want at least 100", total)
	}

	if _, err := lex.WordCount("nonsense"); err == nil {
		t.Error("WordCount on unknown set should fail")
	}
	if _, err := lex.Words("nonsense"); err == nil {
		t.Error("Words on unknown set should fail")
	}
	if _, err := lex.Contains("nonsense", "x"); err == nil {
		t.Error("Contains on unknown set should fail")
	}
}

func TestLexicon_Contains(t *testing.T) {
	lex, err := NewLexicon()
	if err != nil {
		t.Fatalf("Failed to load lexicon: %v", err)
	}
	defer lex.Close()

	found, err := lex.Contains(SetHyphenPrefix, "anti")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if !found {
		t.Error("Contains(hyphen-prefix, anti) = false, want true")
	}

	found, err = lex.Contains(SetConcatWords, "cannot")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if !found {
		t.Error("Contains(concat-words, cannot) = false, want true")
	}
}

func TestEncodeDecodeCuts(t *testing.T) {
	tests := [][]int{
		nil,
		{3},
		{3, 5},
		{1, 2, 3, 4},
		{255},
	}

	for _, cuts := range tests {
		got := decodeCuts(encodeCuts(cuts))
		if len(got) != len(cuts) {
			t.Errorf("decodeCuts(encodeCuts(%v)) = %v", cuts, got)
			continue
		}
		for i, c := range got {
			if c != cuts[i] {
				t.Errorf("decodeCuts(encodeCuts(%v))[%d] = %d, want %d", cuts, i, c, cuts[i])
			}
		}
	}
}
