package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/darkyeg/simple-markdown"
)

func main() {
	var outputFile string
	flag.StringVar(&outputFile, "o", "", "output file path (default stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdhtml [-o output.html] [input.md]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var data []byte
	var err error
	if flag.NArg() >= 1 {
		data, err = os.ReadFile(flag.Arg(0))
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	html, err := markdown.MarkdownToHTML(string(data), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering markdown: %v\n", err)
		os.Exit(1)
	}

	if outputFile == "" {
		fmt.Println(html)
		return
	}
	if err := os.WriteFile(outputFile, []byte(html+"\n"), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
