// cmd/blockgen inserts block templates into vault notes: the sample
// creature stat block, or the fill-in callout template for any of the
// compiled-in entity kinds. Without -file the block is printed to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/matthewbaird/dmtools/internal/callout"
	"github.com/matthewbaird/dmtools/internal/statblock"
	"github.com/matthewbaird/dmtools/internal/vault"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("blockgen: ")

	list := flag.Bool("list", false, "list available block kinds and exit")
	kind := flag.String("kind", "", "block kind: statblock, or an entity kind (see -list)")
	file := flag.String("file", "", "note to insert into; omit to print to stdout")
	line := flag.Int("line", 0, "0-based insertion line")
	col := flag.Int("col", 0, "0-based insertion column")
	flag.Parse()

	kinds := callout.Default()

	if *list {
		fmt.Printf("%-24s %s\n", "add-creature-statblock", "Add Creature Statblock")
		for _, name := range kinds.Names() {
			k, _ := kinds.Kind(name)
			fmt.Printf("%-24s %s\n", k.CommandID(), k.CommandName())
		}
		return
	}

	if *kind == "" {
		log.Fatal("missing -kind (use -list to see the available kinds)")
	}

	var block string
	if *kind == "statblock" {
		block = statblock.Sample
	} else {
		k, ok := kinds.Kind(*kind)
		if !ok {
			log.Fatalf("unknown block kind %q (use -list to see the available kinds)", *kind)
		}
		block = callout.Generate(k)
	}

	if *file == "" {
		fmt.Print(block)
		return
	}

	dir, note := filepath.Split(*file)
	if dir == "" {
		dir = "."
	}
	v, err := vault.Open(dir)
	if err != nil {
		log.Fatalf("opening vault: %v", err)
	}
	if err := v.InsertAt(note, *line, *col, block); err != nil {
		log.Fatalf("inserting block: %v", err)
	}
	fmt.Fprintf(os.Stderr, "inserted %s block into %s at %d:%d\n", *kind, *file, *line, *col)
}
