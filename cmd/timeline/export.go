package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SUMMERxKx/Timeline/internal/export"

	"github.com/atotto/clipboard"
)

func exportMain(root rootArgs, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	printView := fs.Bool("print", false, "Render the print-formatted view instead of plain text")
	copyOut := fs.Bool("copy", false, "Copy the export to the system clipboard")
	outPath := fs.String("o", "", "Write the export to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse args: %v", err)
	}

	p, err := loadPlan(root)
	if err != nil {
		log.Fatalf("%v", err)
	}
	lookup := func(key string) string {
		text, err := p.Store.Get(key)
		if err != nil {
			log.Warnf("read note %s: %v", key, err)
			return ""
		}
		return text
	}

	doc := ""
	if *printView {
		doc = export.PrintView(p.Slots, lookup)
	} else {
		doc = export.PlainText(p.Slots, lookup)
	}

	switch {
	case *copyOut:
		if err := clipboard.WriteAll(doc); err != nil {
			log.Fatalf("copy to clipboard: %v", err)
		}
		fmt.Println("Plan copied to clipboard.")
	case *outPath != "":
		if err := os.WriteFile(*outPath, []byte(doc+"\n"), 0o644); err != nil {
			log.Fatalf("write %s: %v", *outPath, err)
		}
	default:
		fmt.Println(doc)
	}
}
