package embedding

import (
	"testing"
	"time"
)

func TestBuildItemText(t *testing.T) {
	day := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   Fields
		want string
	}{
		{
			name: "all fields",
			in:   Fields{Name: "Blue backpack", Description: "Jansport, torn strap", Location: "Library 2F", Date: &day},
			want: "Name: Blue backpack. Description: Jansport, torn strap. Location: Library 2F. Date: 2025-03-14",
		},
		{
			name: "skips empty fields",
			in:   Fields{Name: "Keys", Location: "  "},
			want: "Name: Keys",
		},
		{
			name: "textual date when no structured date",
			in:   Fields{Name: "Umbrella", DateText: "last friday"},
			want: "Name: Umbrella. Date: last friday",
		},
		{
			name: "structured date wins",
			in:   Fields{Description: "black", Date: &day, DateText: "ignored"},
			want: "Description: black. Date: 2025-03-14",
		},
		{
			name: "nothing",
			in:   Fields{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildItemText(tt.in); got != tt.want {
				t.Fatalf("BuildItemText = %q, want %q", got, tt.want)
			}
		})
	}
}
