package dateformatter

// FormatFromInput normalises input and formats it with pattern
func FormatFromInput(input any, pattern string) (string, error) {
	f, err := New(input)
	if err != nil {
		return "", err
	}
	return f.FormatDate(pattern), nil
}

// RelativeFromInput normalises input and describes it relative to now
func RelativeFromInput(input any) (string, error) {
	f, err := New(input)
	if err != nil {
		return "", err
	}
	return f.RelativeTime(), nil
}

// LongDateFromInput normalises input and renders it as a long-form date
func LongDateFromInput(input any) (string, bool, error) {
	f, err := New(input)
	if err != nil {
		return "", false, err
	}
	date, ok := f.LongDate()
	return date, ok, nil
}
