package tokenizer

import (
	"testing"
)

func TestIsSeparator(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{' ', true},
		{'\t', true},
		{'\n', true},
		{'\r', true},
		{'\u00a0', true}, // no-break space
		{'\u2003', true}, // em space
		{'\u200b', true}, // zero-width space
		{'\u00ad', true}, // soft hyphen
		{'\ufeff', true}, // BOM
		{'\x00', true},
		{'a', false},
		{'5', false},
		{',', false},
		{'-', false},
		{'$', false},
		{'\'', false},
	}

	for _, tt := range tests {
		if got := IsSeparator(tt.input); got != tt.expected {
			t.Errorf("IsSeparator(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsAlnum(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{'a', true},
		{'Z', true},
		{'ä', true},
		{'я', true},
		{'字', true},
		{'5', true},
		{'Ⅻ', true}, // Roman numeral, category Nl
		{'½', true}, // vulgar fraction, category No
		{'_', false},
		{'!', false},
		{'-', false},
		{' ', false},
		{'́', false}, // combining acute
	}

	for _, tt := range tests {
		if got := IsAlnum(tt.input); got != tt.expected {
			t.Errorf("IsAlnum(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsSymbolEdge(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{'\'', true},
		{'`', true},
		{'’', true}, // right single quote
		{'.', true},
		{'!', true},
		{'?', true},
		{'…', true}, // ellipsis
		{'。', true}, // ideographic full stop
		{',', false},
		{'"', false},
		{'-', false},
		{'a', false},
	}

	for _, tt := range tests {
		if got := IsSymbolEdge(tt.input); got != tt.expected {
			t.Errorf("IsSymbolEdge(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsCurrencyLike(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{'$', true},
		{'€', true},
		{'£', true},
		{'¥', true},
		{'₩', true},
		{'#', true},
		{'%', false},
		{'&', false},
		{'a', false},
		{'5', false},
	}

	for _, tt := range tests {
		if got := IsCurrencyLike(tt.input); got != tt.expected {
			t.Errorf("IsCurrencyLike(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestClassifySymbol(t *testing.T) {
	tests := []struct {
		input    rune
		expected symbolClass
	}{
		{',', symbolDelimiter},
		{';', symbolDelimiter},
		{':', symbolDelimiter},
		{'&', symbolDelimiter},
		{'/', symbolDelimiter},
		{'(', symbolDelimiter},
		{'<', symbolDelimiter},
		{'"', symbolDelimiter},
		{'-', symbolDelimiter},
		{'—', symbolDelimiter}, // em dash
		{'→', symbolDelimiter}, // rightwards arrow
		{'\'', symbolEdge},
		{'.', symbolEdge},
		{'!', symbolEdge},
		{'$', symbolCurrency},
		{'#', symbolCurrency},
		{'a', symbolNone},
		{'5', symbolNone},
		{'@', symbolNone},
		{'%', symbolNone},
	}

	for _, tt := range tests {
		if got := classifySymbol(tt.input); got != tt.expected {
			t.Errorf("classifySymbol(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLastSequenceIndex(t *testing.T) {
	tests := []struct {
		input    string
		curr     int
		expected int
	}{
		{"...", 0, 3}, // identical final marks
		{"?!", 0, 2},  // mixed final marks extend the run
		{"!?!ok", 0, 3},
		{"--", 0, 2}, // identical symbols
		{"-*", 0, 1}, // different symbols stop the run
		{"a..b", 1, 3},
		{".", 0, 1},
	}

	for _, tt := range tests {
		rs := []rune(tt.input)
		if got := lastSequenceIndex(rs, tt.curr, len(rs)); got != tt.expected {
			t.Errorf("lastSequenceIndex(%q, %d) = %d, want %d", tt.input, tt.curr, got, tt.expected)
		}
	}
}

func TestIsUpper(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"AT", true},
		{"A", true},
		{"USA", true},
		{"At", false},
		{"at", false},
		{"123", false}, // no cased characters
		{"A1", true},   // digits don't break an uppercase run
		{"", false},
	}

	for _, tt := range tests {
		if got := isUpper(tt.input); got != tt.expected {
			t.Errorf("isUpper(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDigitRun(t *testing.T) {
	rs := []rune("ab123cd")
	tests := []struct {
		i, j     int
		expected bool
	}{
		{2, 5, true},
		{2, 4, true},
		{1, 5, false},  // includes 'b'
		{2, 6, false},  // includes 'c'
		{-1, 2, false}, // out of bounds
		{3, 3, false},  // empty
		{5, 9, false},  // past the end
	}

	for _, tt := range tests {
		if got := digitRun(rs, tt.i, tt.j); got != tt.expected {
			t.Errorf("digitRun(%q, %d, %d) = %v, want %v", string(rs), tt.i, tt.j, got, tt.expected)
		}
	}
}
