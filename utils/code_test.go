package utils

import (
	"strings"
	"testing"
)

func TestGenerateSampleCode(t *testing.T) {
	code, err := GenerateSampleCode()
	if err != nil {
		t.Fatalf("GenerateSampleCode failed: %v", err)
	}
	if len(code) != 16 {
		t.Errorf("code length = %d, want 16", len(code))
	}
	if !ValidateSampleCode(code) {
		t.Errorf("generated code %q does not validate", code)
	}
}

func TestGenerateSampleCodeWithPrefix(t *testing.T) {
	code, err := GenerateSampleCodeWithPrefix("ICRAF")
	if err != nil {
		t.Fatalf("GenerateSampleCodeWithPrefix failed: %v", err)
	}
	if !strings.HasPrefix(code, "ICRAF-") {
		t.Errorf("code = %q, want ICRAF- prefix", code)
	}
}

func TestValidateSampleCode(t *testing.T) {
	if ValidateSampleCode("short") {
		t.Error("short code should not validate")
	}
	if ValidateSampleCode("abcdefghijklmnop") {
		t.Error("lowercase code should not validate")
	}
	if !ValidateSampleCode("0123456789ABCDEF") {
		t.Error("valid code rejected")
	}
}
