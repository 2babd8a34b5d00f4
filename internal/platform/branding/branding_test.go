package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "FlaskHub" {
		t.Fatalf("AppName = %q, want %q", AppName, "FlaskHub")
	}
}

func TestWordmarkSplitsAccent(t *testing.T) {
	plain, accent := Wordmark()
	if plain != "Flask" || accent != "Hub" {
		t.Fatalf("Wordmark() = (%q, %q), want (%q, %q)", plain, accent, "Flask", "Hub")
	}
}
