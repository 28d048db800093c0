package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/kerem-kaynak/english-tokenizer/pkg/tokenizer"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62
)

var (
	line = strings.Repeat("─", boxWidth)

	dim        = color.New(color.Faint)
	titleColor = color.New(color.FgCyan)
	opsColor   = color.New(color.FgGreen)
	nsColor    = color.New(color.FgYellow)
)

func main() {
	// Load tokenizer
	fmt.Print("Loading lexicon... ")
	start := time.Now()
	tok, err := tokenizer.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer tok.Close()
	fmt.Printf("done (%d entries in %v)\n", tok.LexiconWordCount(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	singleWord := "tokenization"
	contracted := "I'm sure they won't've finished 'til next week, y'know?"
	sentence := "Mr. Smith paid $1,500.50 for the pre-season tickets on 12/25!"
	webText := "Email alice@example.com or visit https://example.com :-)"

	// Full pipeline benchmarks
	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Single word", func() { tok.Tokenize(singleWord) })
	bench("Contractions (10 words)", func() { tok.Tokenize(contracted) })
	bench("Sentence (11 words)", func() { tok.Tokenize(sentence) })
	bench("Web text (7 words)", func() { tok.Tokenize(webText) })
	printFooter()
	fmt.Println()

	// Component breakdown
	printHeader("COMPONENT BREAKDOWN")

	bench("Classifier (separator)", func() {
		tokenizer.IsSeparator(' ')
	})

	bench("Classifier (alnum)", func() {
		tokenizer.IsAlnum('a')
	})

	lex, err := tokenizer.NewLexicon()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer lex.Close()

	bench("Lexicon lookup", func() {
		lex.AbbreviationPeriod("etc")
	})

	bench("Concat-word lookup", func() {
		lex.ConcatCuts("cannot")
	})

	tok.ClearCache()
	tok.Tokenize(sentence)
	bench("Sentence (cache hit)", func() {
		tok.Tokenize(sentence)
	})

	bench("Sentence (cache miss)", func() {
		tok.ClearCache()
		tok.Tokenize(sentence)
	})
	printFooter()
	fmt.Println()

	// Span shapes: what each decomposition path costs
	printHeader("SPAN SHAPE BREAKDOWN")
	bench("Trivial (all alnum)", func() {
		tok.Tokenize("tokenization")
	})
	bench("Contraction", func() {
		tok.Tokenize("won't")
	})
	bench("Abbreviation", func() {
		tok.Tokenize("etc.")
	})
	bench("Hyperlink", func() {
		tok.Tokenize("https://example.com/doc?p=2")
	})
	bench("Emoticon", func() {
		tok.Tokenize(":-)")
	})
	bench("Numeric (skip rules)", func() {
		tok.Tokenize("1,234,567.89")
	})
	bench("Hyphen merge", func() {
		tok.Tokenize("pre-season")
	})
	bench("Fused word split", func() {
		tok.Tokenize("whaddya")
	})
	bench("Symbol heavy", func() {
		tok.Tokenize("(wait...!?)")
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	colored := fmt.Sprintf("  %-26s %s ops/sec %s ns",
		displayName,
		opsColor.Sprintf("%10.0f", opsPerSec),
		nsColor.Sprintf("%8.0f", nsPerOp))

	// Carry the padding over to the colored row
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(dim.Sprint("│") + colored + dim.Sprint("│"))
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(dim.Sprint("┌" + line + "┐"))
	fmt.Println(dim.Sprint("│") + titleColor.Sprint(padLine("  "+title)) + dim.Sprint("│"))
	fmt.Println(dim.Sprint("├" + line + "┤"))
}

func printFooter() {
	fmt.Println(dim.Sprint("└" + line + "┘"))
}
