package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nickromney-org/date-formatter/internal/data"
)

func main() {
	output := flag.String("output", "internal/data/months.json", "Output file")
	flag.Parse()

	months := data.CanonicalMonths()

	raw, err := data.MarshalMonths(months)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, raw, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Wrote %d months to %s\n", len(months), *output)
}
