package linuxinput

import "testing"

func TestParseCodeNames(t *testing.T) {
	tests := []struct {
		raw      string
		expected uint16
	}{
		{raw: "KEY_F6", expected: CodeKEYF6},
		{raw: "key_f6", expected: CodeKEYF6},
		{raw: " BTN_LEFT ", expected: CodeBTNLeft},
		{raw: "BTN_MIDDLE", expected: CodeBTNMiddle},
	}

	for _, tc := range tests {
		got, err := ParseCode(tc.raw)
		if err != nil {
			t.Fatalf("ParseCode(%q) returned error: %v", tc.raw, err)
		}
		if got != tc.expected {
			t.Fatalf("ParseCode(%q)=%d, want %d", tc.raw, got, tc.expected)
		}
	}
}

func TestParseCodeNumericFallback(t *testing.T) {
	got, err := ParseCode("64")
	if err != nil {
		t.Fatalf("ParseCode(64) returned error: %v", err)
	}
	if got != CodeKEYF6 {
		t.Fatalf("ParseCode(64)=%d, want %d", got, CodeKEYF6)
	}
}

func TestParseCodeRejectsGarbage(t *testing.T) {
	if _, err := ParseCode(""); err == nil {
		t.Fatal("expected error for empty code")
	}
	if _, err := ParseCode("KEY_NOPE_NOT_REAL"); err == nil {
		t.Fatal("expected error for unknown name")
	}
	if _, err := ParseCode("70000"); err == nil {
		t.Fatal("expected error for out-of-range code")
	}
}

func TestFormatCodeName(t *testing.T) {
	if name := FormatCodeName(CodeKEYF6); name != "KEY_F6" {
		t.Fatalf("FormatCodeName(KEY_F6)=%q", name)
	}
	// 0x110 carries the BTN_MOUSE alias in the evdev name tables; the
	// formatted name must still be the plain button name.
	if name := FormatCodeName(CodeBTNLeft); name != "BTN_LEFT" {
		t.Fatalf("FormatCodeName(BTN_LEFT)=%q", name)
	}
	if name := FormatCodeName(CodeBTNRight); name != "BTN_RIGHT" {
		t.Fatalf("FormatCodeName(BTN_RIGHT)=%q", name)
	}
}

func TestFormatCodeNameUnmappedFallsBackToNumeric(t *testing.T) {
	if name := FormatCodeName(0x2e8); name != "744" {
		t.Fatalf("FormatCodeName(0x2e8)=%q, want \"744\"", name)
	}
}

func TestFormatCodeNameRoundTripsThroughParseCode(t *testing.T) {
	for _, code := range []uint16{CodeBTNLeft, CodeBTNMiddle, CodeBTNRight, CodeKEYF6} {
		got, err := ParseCode(FormatCodeName(code))
		if err != nil {
			t.Fatalf("ParseCode(FormatCodeName(%d)) returned error: %v", code, err)
		}
		if got != code {
			t.Fatalf("round trip of code %d produced %d", code, got)
		}
	}
}
