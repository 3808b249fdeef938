package types

// Month pairs a calendar month number (1-12) with its English name
type Month struct {
	Number int    `json:"month_no"`
	Name   string `json:"name"`
}

// MonthTable is an ordered list of months used for long-form rendering
type MonthTable []Month

// Name returns the name registered for the given month number
func (t MonthTable) Name(number int) (string, bool) {
	for _, m := range t {
		if m.Number == number {
			return m.Name, true
		}
	}
	return "", false
}
