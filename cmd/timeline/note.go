package main

import (
	"fmt"
	"os"
	"strings"
)

const noteUsage = `usage:
  timeline note get <key>
  timeline note set <key> <text>
  timeline note clear [prefix]

Keys look like fall-2026-1 (term-year-index); list them with timeline export.`

func noteMain(root rootArgs, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, noteUsage)
		os.Exit(2)
	}

	p, err := loadPlan(root)
	if err != nil {
		log.Fatalf("%v", err)
	}

	switch args[0] {
	case "get":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, noteUsage)
			os.Exit(2)
		}
		text, err := p.Store.Get(args[1])
		if err != nil {
			log.Fatalf("get note: %v", err)
		}
		fmt.Println(text)
	case "set":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, noteUsage)
			os.Exit(2)
		}
		if err := p.Store.Set(args[1], strings.Join(args[2:], " ")); err != nil {
			log.Fatalf("set note: %v", err)
		}
	case "clear":
		prefix := ""
		if len(args) > 1 {
			prefix = args[1]
		}
		removed, err := p.Store.RemoveMatching(prefix)
		if err != nil {
			log.Fatalf("clear notes: %v", err)
		}
		fmt.Printf("Removed %d note(s).\n", removed)
	default:
		fmt.Fprintln(os.Stderr, noteUsage)
		os.Exit(2)
	}
}
