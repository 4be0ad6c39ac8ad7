package docs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	want := []string{"cart", "checkout", "config", "tui"}
	if diff := cmp.Diff(want, Topics()); diff != "" {
		t.Fatalf("topics mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	md, ok := Get(" Checkout ")
	if !ok || !strings.HasPrefix(md, "# Checkout") {
		t.Fatalf("Get(checkout) = %q, %v", md, ok)
	}
	for _, bad := range []string{"", "nope", "../docs"} {
		if _, ok := Get(bad); ok {
			t.Fatalf("Get(%q) should fail", bad)
		}
	}
}
