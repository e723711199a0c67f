package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Error("IsValidDate(2025-02-30) = true, want false")
	}
	if _, ok := IsValidDate("2025-08-15"); !ok {
		t.Error("IsValidDate(2025-08-15) = false, want true")
	}
	if _, ok := IsValidDate("15-08-2025"); ok {
		t.Error("IsValidDate(15-08-2025) = true, want false")
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(-6.2088) || !IsValidLongitude(106.8456) {
		t.Error("valid Jakarta coordinates rejected")
	}
	if IsValidLatitude(91) || IsValidLatitude(-91) {
		t.Error("out-of-range latitude accepted")
	}
	if IsValidLongitude(181) || IsValidLongitude(-181) {
		t.Error("out-of-range longitude accepted")
	}
}

func TestIsValidClockCutoff(t *testing.T) {
	if _, ok := IsValidClockCutoff("09:15"); !ok {
		t.Error("IsValidClockCutoff(09:15) = false, want true")
	}
	if _, ok := IsValidClockCutoff("25:00"); ok {
		t.Error("IsValidClockCutoff(25:00) = true, want false")
	}
	if _, ok := IsValidClockCutoff("915"); ok {
		t.Error("IsValidClockCutoff(915) = true, want false")
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00+07:00",
		"2024-01-15T10:30:00.123456789Z",
	}
	invalid := []string{
		"2024-01-15 10:30:00",
		"2024-01-15",
		"",
	}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}
