// cmd/statrender renders one stat-block JSON record to HTML. It reads the
// record from a file or stdin and writes either a full page or a bare
// fragment, for piping into other tooling or checking a record by hand.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/matthewbaird/dmtools/internal/doc"
	"github.com/matthewbaird/dmtools/internal/statblock"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("statrender: ")

	in := flag.String("in", "-", "stat-block JSON file, or - for stdin")
	out := flag.String("out", "-", "output HTML file, or - for stdout")
	fragment := flag.Bool("fragment", false, "emit only the stat-block element, no page shell")
	flag.Parse()

	src, err := readInput(*in)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	b, err := statblock.Parse(src)
	if err != nil {
		log.Fatalf("%v", err)
	}

	html := statblock.Render(b).HTML()
	if !*fragment {
		title := doc.NewRoot("title").SetText(b.Name).HTML()
		html = "<!doctype html>\n<html><head><meta charset=\"utf-8\">" +
			title + "</head>\n<body>" + html + "</body></html>\n"
	}

	if err := writeOutput(*out, html); err != nil {
		log.Fatalf("writing output: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path, html string) error {
	if path == "-" {
		_, err := fmt.Print(html)
		return err
	}
	return os.WriteFile(path, []byte(html), 0644)
}
