package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"fortio.org/safecast"
)

// StdinPath makes Load read from the loader's stdin
const StdinPath = "-"

// BatchData represents the structure of a batch file
type BatchData struct {
	GeneratedAt *time.Time  `json:"generated_at,omitempty"`
	Entries     []jsonEntry `json:"entries"`
}

// jsonEntry is either a bare value or {"input": ..., "pattern": ...}
type jsonEntry struct {
	Input     any
	Pattern   string
	decodeErr error
}

func (je *jsonEntry) UnmarshalJSON(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return err
	}

	obj, ok := value.(map[string]any)
	if !ok {
		je.Input = value
		return nil
	}

	input, ok := obj["input"]
	if !ok {
		je.decodeErr = errors.New(`entry object has no "input" field`)
		return nil
	}
	je.Input = input

	if p, ok := obj["pattern"]; ok {
		pattern, isString := p.(string)
		if !isString {
			je.decodeErr = fmt.Errorf(`"pattern" must be a string, got %T`, p)
			return nil
		}
		je.Pattern = pattern
	}
	return nil
}

// Entry is a single input to render
type Entry struct {
	Index   int
	Input   any
	Pattern string // empty means the caller's default
	Err     error  // set when the entry could not be decoded
}

// toEntry converts jsonEntry to Entry, narrowing JSON numbers to Go numbers
func (je *jsonEntry) toEntry(index int) Entry {
	entry := Entry{Index: index, Pattern: je.Pattern, Err: je.decodeErr}
	if entry.Err != nil {
		return entry
	}

	n, ok := je.Input.(json.Number)
	if !ok {
		entry.Input = je.Input
		return entry
	}

	value, err := narrowNumber(n)
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Input = value
	return entry
}

// narrowNumber returns int64 for integral numbers and float64 otherwise
func narrowNumber(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}

	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %s: %w", n, err)
	}
	if f == math.Trunc(f) {
		// Exponent forms like 1.733032145e9 are still whole numbers
		if i, err := safecast.Convert[int64](f); err == nil {
			return i, nil
		}
	}
	return f, nil
}

// Loader reads batch files from disk or stdin
type Loader struct {
	stdin io.Reader
}

// NewLoader creates a new batch loader
func NewLoader(stdin io.Reader) *Loader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Loader{stdin: stdin}
}

// Load reads and parses the batch file at path, or stdin when path is "-"
func (l *Loader) Load(path string) (*BatchData, []Entry, error) {
	var (
		data []byte
		err  error
	)
	if path == StdinPath {
		data, err = io.ReadAll(l.stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read batch from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read batch file %s: %w", path, err)
		}
	}

	return Parse(data)
}

// Parse decodes a batch document. Malformed JSON fails the whole batch;
// entries that decode but cannot be used carry their own Err.
func Parse(data []byte) (*BatchData, []Entry, error) {
	var batchData BatchData
	if err := json.Unmarshal(data, &batchData); err != nil {
		return nil, nil, fmt.Errorf("failed to parse batch: %w", err)
	}

	entries := make([]Entry, 0, len(batchData.Entries))
	for i := range batchData.Entries {
		entries = append(entries, batchData.Entries[i].toEntry(i))
	}

	return &batchData, entries, nil
}
