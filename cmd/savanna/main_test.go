package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRewriteCartShortcutArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"savanna"},
			want: []string{"savanna"},
		},
		{
			name: "bare verb",
			in:   []string{"savanna", "confirm"},
			want: []string{"savanna", "cart", "confirm"},
		},
		{
			name: "verb after value flag",
			in:   []string{"savanna", "--dir", "./ws", "add-food", "Suya", "8"},
			want: []string{"savanna", "--dir", "./ws", "cart", "add-food", "Suya", "8"},
		},
		{
			name: "verb after equals flag",
			in:   []string{"savanna", "--backend=sqlite", "show"},
			want: []string{"savanna", "--backend=sqlite", "cart", "show"},
		},
		{
			name: "verb after bool flag",
			in:   []string{"savanna", "--pretty", "book-safari", "--guests", "3"},
			want: []string{"savanna", "--pretty", "cart", "book-safari", "--guests", "3"},
		},
		{
			name: "verb after double dash",
			in:   []string{"savanna", "--", "clear"},
			want: []string{"savanna", "cart", "clear"},
		},
		{
			name: "double dash after flag",
			in:   []string{"savanna", "--format", "edn", "--", "confirm"},
			want: []string{"savanna", "--format", "edn", "cart", "confirm"},
		},
		{
			name: "double dash before other word untouched",
			in:   []string{"savanna", "--", "checkout"},
			want: []string{"savanna", "--", "checkout"},
		},
		{
			name: "explicit cart untouched",
			in:   []string{"savanna", "cart", "confirm"},
			want: []string{"savanna", "cart", "confirm"},
		},
		{
			name: "other command untouched",
			in:   []string{"savanna", "checkout", "--markdown"},
			want: []string{"savanna", "checkout", "--markdown"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, rewriteCartShortcutArgs(tt.in)); diff != "" {
				t.Fatalf("rewrite mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
