// Where: internal/domain/tileset/request.go
// What: Blank tileset generation request and its defaults.
// Why: Keep size resolution rules independent from CLI and filesystem code.
package tileset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/poruru/tileblank/internal/meta"
)

// BankSize is the size of one character-graphics memory bank in bytes.
const BankSize int64 = 0x800

// DefaultBanks is the number of banks in a default tileset: three
// character-graphics memory banks.
const DefaultBanks = 3

// ErrInvalidSize reports a size argument rejected in strict mode.
var ErrInvalidSize = errors.New("invalid size")

// Defaults holds the values substituted for missing or unusable input.
type Defaults struct {
	Filename string
	Banks    int
}

// DefaultDefaults returns the built-in defaults: tileset.bin, 3 banks.
func DefaultDefaults() Defaults {
	return Defaults{
		Filename: meta.DefaultOutputFile,
		Banks:    DefaultBanks,
	}
}

// Size returns the fallback size in bytes.
func (d Defaults) Size() int64 {
	banks := d.Banks
	if banks < 1 {
		banks = DefaultBanks
	}
	return BankSize * int64(banks)
}

// GenerationRequest describes one blank tileset file to write.
type GenerationRequest struct {
	Filename string
	Size     int64
	// Fallback is true when Size came from Defaults instead of user input.
	Fallback bool
}

// ParseSize reads a size argument the lenient way: leading whitespace and
// an optional sign are skipped and the longest run of digits is used, so
// "12abc" is 12 and "1.5" is 1. A "0x" prefix selects hexadecimal digits.
// ok is false when no digits are found or the value is negative.
func ParseSize(raw string) (size int64, ok bool) {
	s := strings.TrimLeft(raw, " \t\r\n")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && isHexDigit(s[2]) {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	value, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil || (negative && value != 0) {
		return 0, false
	}
	return value, true
}

// ParseSizeStrict accepts only a whole, non-negative base-10 integer,
// ignoring surrounding whitespace.
func ParseSizeStrict(raw string) (size int64, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// NewRequest builds a request from raw filename and size values.
// An empty filename takes the default. The size is read with ParseSize,
// or ParseSizeStrict when strict is set. An unusable size takes the
// default, except in strict mode where ErrInvalidSize is returned.
func NewRequest(filename, rawSize string, defaults Defaults, strict bool) (GenerationRequest, error) {
	name := filename
	if strings.TrimSpace(name) == "" {
		name = defaults.Filename
	}
	if strings.TrimSpace(name) == "" {
		name = meta.DefaultOutputFile
	}

	parse := ParseSize
	if strict {
		parse = ParseSizeStrict
	}

	req := GenerationRequest{Filename: name}
	if size, ok := parse(rawSize); ok {
		req.Size = size
		return req, nil
	}
	if strict && strings.TrimSpace(rawSize) != "" {
		return GenerationRequest{}, fmt.Errorf("%w: %q", ErrInvalidSize, rawSize)
	}
	req.Size = defaults.Size()
	req.Fallback = true
	return req, nil
}

// Validate checks the request invariants.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Filename) == "" {
		return errors.New("filename is required")
	}
	if r.Size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, r.Size)
	}
	return nil
}
