package main

import (
	"fmt"
	"os"

	"github.com/nickromney-org/date-formatter/internal/data"
)

func main() {
	// Load embedded month table
	embedded, err := data.LoadEmbeddedMonths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading embedded months: %v\n", err)
		os.Exit(1)
	}

	if len(embedded) == 0 {
		fmt.Fprintf(os.Stderr, "Error: No embedded months found\n")
		os.Exit(1)
	}

	problems := data.Verify(embedded)
	if len(problems) == 0 {
		fmt.Printf("✅ Month table is complete (%d months)\n", len(embedded))
		os.Exit(0)
	}

	fmt.Printf("⚠️  Month table needs regenerating (go generate ./internal/data):\n")
	for _, p := range problems {
		fmt.Printf("  - %s\n", p)
	}
	os.Exit(1)
}
