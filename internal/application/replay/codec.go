package replay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Format selects the on-disk encoding of a replay
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// FormatFor picks the format from a file extension: .mpk is msgpack,
// anything else JSON.
func FormatFor(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".mpk") {
		return FormatMsgpack
	}
	return FormatJSON
}

// Marshal encodes data in the given format
func Marshal(data ReplayData, f Format) ([]byte, error) {
	switch f {
	case FormatMsgpack:
		b, err := msgpack.Marshal(&data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode replay: %w", err)
		}
		return b, nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return nil, fmt.Errorf("failed to encode replay: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// Unmarshal decodes data in the given format
func Unmarshal(b []byte, f Format) (ReplayData, error) {
	var data ReplayData
	var err error
	switch f {
	case FormatMsgpack:
		err = msgpack.Unmarshal(b, &data)
	default:
		err = json.Unmarshal(b, &data)
	}
	if err != nil {
		return ReplayData{}, fmt.Errorf("failed to decode replay: %w", err)
	}
	return data, nil
}

// Save writes data to filename in the format implied by its extension
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	b, err := Marshal(data, FormatFor(filename))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	return nil
}

// LoadReplay reads a replay file in the format implied by its extension
func LoadReplay(filename string) (*ReplayData, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	data, err := Unmarshal(b, FormatFor(filename))
	if err != nil {
		return nil, err
	}
	return &data, nil
}
