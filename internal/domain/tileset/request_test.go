// Where: internal/domain/tileset/request_test.go
// What: Tests for request defaults and size parsing.
// Why: Lock down fallback behavior for bad size input.
package tileset

import (
	"errors"
	"testing"
)

func TestDefaultDefaultsSize(t *testing.T) {
	d := DefaultDefaults()
	if d.Filename != "tileset.bin" {
		t.Fatalf("unexpected default filename: %q", d.Filename)
	}
	if got := d.Size(); got != 6144 {
		t.Fatalf("unexpected default size: %d", got)
	}
}

func TestDefaultsSizeUsesBanks(t *testing.T) {
	if got := (Defaults{Banks: 1}).Size(); got != 2048 {
		t.Fatalf("expected one bank, got %d", got)
	}
	if got := (Defaults{Banks: 0}).Size(); got != 6144 {
		t.Fatalf("expected zero banks to use default, got %d", got)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{raw: "2048", want: 2048, wantOK: true},
		{raw: " 100 ", want: 100, wantOK: true},
		{raw: "0", want: 0, wantOK: true},
		{raw: "+7", want: 7, wantOK: true},
		{raw: "12abc", want: 12, wantOK: true},
		{raw: "1.5", want: 1, wantOK: true},
		{raw: "0x800", want: 2048, wantOK: true},
		{raw: "", wantOK: false},
		{raw: "abc", wantOK: false},
		{raw: "-abc", wantOK: false},
		{raw: "-5", wantOK: false},
		{raw: "-1.5", wantOK: false},
		{raw: "99999999999999999999", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseSize(tt.raw)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ParseSize(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseSizeStrict(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{raw: "2048", want: 2048, wantOK: true},
		{raw: " 100 ", want: 100, wantOK: true},
		{raw: "0", want: 0, wantOK: true},
		{raw: "", wantOK: false},
		{raw: "12abc", wantOK: false},
		{raw: "1.5", wantOK: false},
		{raw: "0x800", wantOK: false},
		{raw: "-5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseSizeStrict(tt.raw)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ParseSizeStrict(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNewRequest(t *testing.T) {
	defaults := DefaultDefaults()
	tests := []struct {
		name         string
		filename     string
		size         string
		strict       bool
		wantFile     string
		wantSize     int64
		wantFallback bool
		wantErr      bool
	}{
		{name: "no arguments", wantFile: "tileset.bin", wantSize: 6144, wantFallback: true},
		{name: "explicit values", filename: "chr.bin", size: "2048", wantFile: "chr.bin", wantSize: 2048},
		{name: "bad size falls back", filename: "chr.bin", size: "abc", wantFile: "chr.bin", wantSize: 6144, wantFallback: true},
		{name: "zero size kept", filename: "chr.bin", size: "0", wantFile: "chr.bin", wantSize: 0},
		{name: "leading digits used", filename: "chr.bin", size: "12abc", wantFile: "chr.bin", wantSize: 12},
		{name: "strict rejects partial number", filename: "chr.bin", size: "12abc", strict: true, wantErr: true},
		{name: "strict rejects bad size", filename: "chr.bin", size: "abc", strict: true, wantErr: true},
		{name: "strict allows missing size", filename: "chr.bin", strict: true, wantFile: "chr.bin", wantSize: 6144, wantFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.filename, tt.size, defaults, tt.strict)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Fatalf("expected ErrInvalidSize, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Filename != tt.wantFile || req.Size != tt.wantSize || req.Fallback != tt.wantFallback {
				t.Fatalf("unexpected request: %+v", req)
			}
		})
	}
}

func TestNewRequestEmptyDefaultsFilename(t *testing.T) {
	req, err := NewRequest("", "", Defaults{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Filename != "tileset.bin" {
		t.Fatalf("expected built-in filename, got %q", req.Filename)
	}
}

func TestValidate(t *testing.T) {
	if err := (GenerationRequest{Filename: "a.bin", Size: 1}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (GenerationRequest{Size: 1}).Validate(); err == nil {
		t.Fatalf("expected error for empty filename")
	}
	if err := (GenerationRequest{Filename: "a.bin", Size: -1}).Validate(); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}
