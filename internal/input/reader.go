package input

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rickgao/series-data/internal/model"
)

// Input encodings accepted by Decode.
const (
	FormatAuto  = "auto"  // Array when the first byte is '[', JSON Lines otherwise
	FormatJSON  = "json"  // A single JSON array
	FormatJSONL = "jsonl" // One object per line
)

// ErrUnknownFormat is returned for a format other than the Format constants.
var ErrUnknownFormat = errors.New("unknown input format")

// Open returns a reader for path. "-" means stdin, which is not closed.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// Decode reads every raw record from r in the given format.
// An empty format means FormatAuto.
func Decode(r io.Reader, format string) ([]model.RawRecord, error) {
	switch format {
	case "", FormatAuto, FormatJSON, FormatJSONL:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return []model.RawRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if format == "" || format == FormatAuto {
		format = FormatJSONL
		if first == '[' {
			format = FormatJSON
		}
	}

	dec := json.NewDecoder(br)
	if format == FormatJSON {
		return decodeArray(dec)
	}
	return decodeLines(dec)
}

func decodeArray(dec *json.Decoder) ([]model.RawRecord, error) {
	var records []model.RawRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode record array: %w", err)
	}
	if dec.More() {
		return nil, errors.New("decode record array: trailing data after array")
	}
	if records == nil {
		records = []model.RawRecord{}
	}
	return records, nil
}

func decodeLines(dec *json.Decoder) ([]model.RawRecord, error) {
	records := []model.RawRecord{}
	for {
		var rec model.RawRecord
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
}

// ReadFile opens path and decodes every record in it.
func ReadFile(path, format string) ([]model.RawRecord, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Decode(rc, format)
}

// peekNonSpace returns the first non-whitespace byte without consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return 0, err
		}
		return b, nil
	}
}
