package data

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nickromney-org/date-formatter/pkg/types"
)

//go:generate go run ../../cmd/bootstrap-months -output months.json

//go:embed months.json
var monthsJSON []byte

type embeddedMonths struct {
	Months []types.Month `json:"months"`
}

// LoadEmbeddedMonths loads the month name table from embedded JSON
func LoadEmbeddedMonths() (types.MonthTable, error) {
	return parseMonths(monthsJSON)
}

func parseMonths(raw []byte) (types.MonthTable, error) {
	var embedded embeddedMonths
	if err := json.Unmarshal(raw, &embedded); err != nil {
		return nil, err
	}

	table := make(types.MonthTable, 0, len(embedded.Months))
	for _, m := range embedded.Months {
		if m.Number < 1 || m.Number > 12 || strings.TrimSpace(m.Name) == "" {
			// Skip invalid entries
			continue
		}
		table = append(table, m)
	}

	return table, nil
}

// CanonicalMonths returns the English month names January through December
func CanonicalMonths() types.MonthTable {
	table := make(types.MonthTable, 0, 12)
	for m := time.January; m <= time.December; m++ {
		table = append(table, types.Month{Number: int(m), Name: m.String()})
	}
	return table
}

// MarshalMonths encodes a table in the embedded file layout
func MarshalMonths(table types.MonthTable) ([]byte, error) {
	data, err := json.MarshalIndent(embeddedMonths{Months: table}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Verify compares a table against the canonical month names and
// returns one message per missing or mismatched month
func Verify(table types.MonthTable) []string {
	var problems []string
	for _, want := range CanonicalMonths() {
		got, ok := table.Name(want.Number)
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("month %d is missing", want.Number))
		case got != want.Name:
			problems = append(problems, fmt.Sprintf("month %d is %q, expected %q", want.Number, got, want.Name))
		}
	}
	return problems
}
