package platform

import "testing"

func TestEnvDefault(t *testing.T) {
	t.Setenv("ULID_TEST_VALUE", "  debug ")
	if got := EnvDefault("ULID_TEST_VALUE", "info"); got != "debug" {
		t.Fatalf("expected debug, got %q", got)
	}

	t.Setenv("ULID_TEST_VALUE", "   ")
	if got := EnvDefault("ULID_TEST_VALUE", "info"); got != "info" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}

	if got := EnvDefault("ULID_TEST_UNSET", "text"); got != "text" {
		t.Fatalf("expected fallback for unset value, got %q", got)
	}
}

func TestEnvBoolDefault(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{value: "", fallback: true, want: true},
		{value: "true", fallback: false, want: true},
		{value: "1", fallback: false, want: true},
		{value: "false", fallback: true, want: false},
		{value: "0", fallback: true, want: false},
		{value: "nope", fallback: true, want: true},
		{value: "nope", fallback: false, want: false},
	}

	for _, tt := range tests {
		t.Setenv("ULID_TEST_BOOL", tt.value)
		if got := EnvBoolDefault("ULID_TEST_BOOL", tt.fallback); got != tt.want {
			t.Fatalf("expected %v for %q (fallback %v), got %v", tt.want, tt.value, tt.fallback, got)
		}
	}
}
