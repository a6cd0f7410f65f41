package notion

import (
	"testing"
)

func TestExtractPageID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "hyphenated uuid",
			input: "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
			want:  "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
			found: true,
		},
		{
			name:  "compact id",
			input: "0a1b2c3d4e5f60718293a4b5c6d7e8f9",
			want:  "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
			found: true,
		},
		{
			name:  "uppercase compact id",
			input: "0A1B2C3D4E5F60718293A4B5C6D7E8F9",
			want:  "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
			found: true,
		},
		{
			name:  "id embedded in page url",
			input: "https://www.notion.so/My-Post-0a1b2c3d4e5f60718293a4b5c6d7e8f9",
			want:  "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
			found: true,
		},
		{
			name:  "hyphenated wins over compact",
			input: "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9 ffffffffffffffffffffffffffffffff",
			want:  "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
			found: true,
		},
		{
			name:  "plain title",
			input: "My First Post",
			found: false,
		},
		{
			name:  "too short hex run",
			input: "deadbeef",
			found: false,
		},
		{
			name:  "empty",
			input: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractPageID(tt.input)
			if found != tt.found {
				t.Fatalf("ExtractPageID(%q) found = %v, want %v", tt.input, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("ExtractPageID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalPageID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "compact to canonical",
			input: "0A1B2C3D4E5F60718293A4B5C6D7E8F9",
			want:  "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
		},
		{
			name:  "already canonical",
			input: "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
			want:  "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
		},
		{
			name:  "wrong length passes through lowercased",
			input: "DEADBEEF",
			want:  "deadbeef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalPageID(tt.input); got != tt.want {
				t.Errorf("CanonicalPageID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsCanonicalPageID(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9", true},
		{"0A1B2C3D-4E5F-6071-8293-A4B5C6D7E8F9", false},
		{"0a1b2c3d4e5f60718293a4b5c6d7e8f9", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsCanonicalPageID(tt.input); got != tt.valid {
				t.Errorf("IsCanonicalPageID(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}
