package main

import (
	"testing"

	"github.com/xSwezan/Clickr/internal/core/autoclicker"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		raw      string
		expected autoclicker.RGB
		wantErr  bool
	}{
		{raw: "#ff0000", expected: autoclicker.RGB{R: 255}},
		{raw: "00FF00", expected: autoclicker.RGB{G: 255}},
		{raw: " #1a2b3c ", expected: autoclicker.RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{raw: "#fff", wantErr: true},
		{raw: "nope", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := parseHexColor(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseHexColor(%q) expected error, got %+v", tc.raw, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseHexColor(%q) returned error: %v", tc.raw, err)
		}
		if got != tc.expected {
			t.Fatalf("parseHexColor(%q)=%+v, want %+v", tc.raw, got, tc.expected)
		}
	}
}

func TestFormatHexColorRoundTrip(t *testing.T) {
	in := autoclicker.RGB{R: 0xde, G: 0xad, B: 0x42}
	got, err := parseHexColor(formatHexColor(in))
	if err != nil {
		t.Fatalf("parseHexColor returned error: %v", err)
	}
	if got != in {
		t.Fatalf("round trip gave %+v, want %+v", got, in)
	}
}

func TestParseLogLevel(t *testing.T) {
	if _, err := parseLogLevel("warning"); err != nil {
		t.Fatalf("parseLogLevel(warning) returned error: %v", err)
	}
	if _, err := parseLogLevel("verbose"); err == nil {
		t.Fatal("parseLogLevel(verbose) expected error")
	}
}

func TestLineSinkWriterSplitsLines(t *testing.T) {
	var lines []string
	w := &lineSinkWriter{sink: func(line string) { lines = append(lines, line) }}

	if _, err := w.Write([]byte("first li")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if _, err := w.Write([]byte("ne\nsecond line\npartial")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if lines[0] != "first line" || lines[1] != "second line" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}
