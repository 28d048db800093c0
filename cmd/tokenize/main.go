package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kerem-kaynak/english-tokenizer/pkg/tokenizer"
)

func main() {
	tok, err := tokenizer.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}
	defer tok.Close()

	// If text provided as argument, tokenize and exit
	if len(os.Args) > 1 {
		text := strings.Join(os.Args[1:], " ")
		tokens := tok.Tokenize(text)
		output, _ := json.Marshal(tokens)
		fmt.Println(string(output))
		return
	}

	// Interactive mode
	fmt.Println("English Tokenizer (interactive mode)")
	fmt.Printf("Lexicon loaded: %d entries\n", tok.LexiconWordCount())
	fmt.Println("Type a sentence, press Enter to tokenize. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}

		tokens := tok.Tokenize(text)
		output, _ := json.Marshal(tokens)
		fmt.Printf("  %s\n\n", output)
	}
}
