package random

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	str := String(32, CharsetAlphanumeric)
	if len(str) != 32 {
		t.Errorf("len = %d, want 32", len(str))
	}
	for _, char := range str {
		if !strings.ContainsRune(string(CharsetAlphanumeric), char) {
			t.Errorf("character %q is not part of the charset", char)
		}
	}
}
