package content

import (
	"strings"
	"testing"

	"github.com/flaskhub/landing/internal/platform/icons"
)

func TestCompiledInCollectionsAreValid(t *testing.T) {
	t.Parallel()

	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestFeaturesKeepDisplayOrder(t *testing.T) {
	t.Parallel()

	want := []string{"Ultra-Fast Routing", "Auto-Security", "Global CDN Edge"}
	got := Features()
	if len(got) != len(want) {
		t.Fatalf("len(Features()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("Features()[%d].Title = %q, want %q", i, got[i].Title, want[i])
		}
	}
}

func TestStatsKeepDisplayOrder(t *testing.T) {
	t.Parallel()

	want := []StatEntry{
		{Label: "Request/Sec", Value: "250K+"},
		{Label: "Cold Start", Value: "< 12ms"},
		{Label: "Uptime", Value: "99.99%"},
	}
	got := Stats()
	if len(got) != len(want) {
		t.Fatalf("len(Stats()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Stats()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	f := Features()
	f[0].Title = "mutated"
	s := Stats()
	s[0].Value = "0"
	n := NavItems()
	n[0] = "mutated"

	if Features()[0].Title == "mutated" {
		t.Fatal("Features() exposed package state")
	}
	if Stats()[0].Value == "0" {
		t.Fatal("Stats() exposed package state")
	}
	if NavItems()[0] == "mutated" {
		t.Fatal("NavItems() exposed package state")
	}
}

func TestValidateReportsEveryDefect(t *testing.T) {
	t.Parallel()

	c := Collections{
		NavItems: []string{" "},
		Features: []FeatureEntry{{Icon: icons.ID("sparkle")}},
		Stats:    []StatEntry{{Label: "Uptime"}},
	}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, marker := range []string{
		"nav item 0: label is required",
		`feature 0: icon "sparkle" is not cataloged`,
		"title is required",
		"description is required",
		"stat 0: value is required",
	} {
		if !strings.Contains(err.Error(), marker) {
			t.Fatalf("error missing %q: %v", marker, err)
		}
	}
}

func TestEmptyCollectionsAreValid(t *testing.T) {
	t.Parallel()

	if err := (Collections{}).Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
