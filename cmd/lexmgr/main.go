package main

import (
	"fmt"
	"os"

	"github.com/kerem-kaynak/english-tokenizer/pkg/tokenizer"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	lex, err := tokenizer.NewLexicon()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}
	defer lex.Close()

	switch command {
	case "sets":
		for _, name := range lex.Sets() {
			count, _ := lex.WordCount(name)
			fmt.Printf("%-22s %d entries\n", name, count)
		}

	case "contains":
		if len(os.Args) < 4 {
			fmt.Println("Error: contains requires a set and a word")
			os.Exit(1)
		}
		set, word := os.Args[2], os.Args[3]
		found, err := lex.Contains(set, word)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if found {
			fmt.Printf("'%s' exists in %s\n", word, set)
		} else {
			fmt.Printf("'%s' NOT in %s\n", word, set)
			os.Exit(1)
		}

	case "dump":
		if len(os.Args) < 3 {
			fmt.Println("Error: dump requires a set")
			os.Exit(1)
		}
		set := os.Args[2]
		words, err := lex.Words(set)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, word := range words {
			fmt.Println(word)
		}

	case "stats":
		total, _ := lex.WordCount("")
		fmt.Printf("Lexicon sets: %d\n", len(lex.Sets()))
		fmt.Printf("Total entries: %d\n", total)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: lexmgr <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sets                    List lexicon sets with entry counts")
	fmt.Println("  contains <set> <word>   Check if word exists in a set")
	fmt.Println("  dump <set>              Print all entries of a set")
	fmt.Println("  stats                   Show lexicon statistics")
}
