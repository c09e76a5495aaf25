package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/vasyalisk/schemafetch"
)

// fetchlint checks YAML fetch-field configuration files: it reports parse
// errors, duplicate fields and empty path segments, and prints the resolved
// field list per schema.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: fetchlint <config.yaml> [<config.yaml> ...]")
	}
	warnings := 0
	for _, path := range os.Args[1:] {
		cfg, err := schemafetch.LoadConfigFile(path)
		if err != nil {
			log.Fatalf("fetchlint: %v", err)
		}
		warnings += lint(path, cfg)
	}
	if warnings > 0 {
		os.Exit(1)
	}
}

func lint(path string, cfg schemafetch.Config) int {
	warnings := 0
	names := make([]string, 0, len(cfg.Schemas))
	for name := range cfg.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fields := cfg.Fields(name)
		seen := map[string]bool{}
		for _, field := range fields {
			if seen[field] {
				fmt.Fprintf(os.Stderr, "Warning: %s: %s: duplicate fetch field %q\n", path, name, field)
				warnings++
			}
			seen[field] = true
			for _, segment := range strings.Split(field, "__") {
				if segment == "" {
					fmt.Fprintf(os.Stderr, "Warning: %s: %s: empty segment in fetch field %q\n", path, name, field)
					warnings++
					break
				}
			}
		}
		fmt.Printf("%s: %s: %v\n", path, name, fields)
	}
	return warnings
}
