package constants

import "testing"

func TestReviewStatusFor_KnownDesignations(t *testing.T) {
	cases := map[string]ReviewStatus{
		"SUPLENTE":    ReviewStatusSuplente,
		"INTERINO":    ReviewStatusInterino,
		"TITULAR":     ReviewStatusTitular,
		" suplente ":  ReviewStatusSuplente,
		"Interíno":    ReviewStatusInterino,
		"titular\n":   ReviewStatusTitular,
	}
	for in, want := range cases {
		got, ok := ReviewStatusFor(in)
		if !ok || got != want {
			t.Fatalf("ReviewStatusFor(%q) = (%q, %v), want (%q, true)", in, got, ok, want)
		}
	}
}

func TestReviewStatusFor_UnknownPassesThrough(t *testing.T) {
	got, ok := ReviewStatusFor("  CONTRATADO ")
	if ok {
		t.Fatalf("ReviewStatusFor() ok = true for unknown designation")
	}
	if got != "CONTRATADO" {
		t.Fatalf("ReviewStatusFor() = %q, want raw trimmed text", got)
	}
}

func TestMapExtToFormat(t *testing.T) {
	if got := MapExtToFormat(".PDF"); got != PDF {
		t.Fatalf("MapExtToFormat(.PDF) = %q", got)
	}
	if got := MapExtToFormat("heic"); got != "" {
		t.Fatalf("MapExtToFormat(heic) = %q, want empty", got)
	}
}
