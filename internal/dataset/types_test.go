package dataset

import (
	"math"
	"testing"
)

func TestNewCopiesInput(t *testing.T) {
	launches := []Launch{
		{Site: "CCAFS", PayloadMassKg: 500, BoosterCategory: "v1.0", Class: 0},
		{Site: "VAFB", PayloadMassKg: 3000, BoosterCategory: "v1.1", Class: 1},
	}
	ds := New(launches)

	launches[0].Site = "mutated"
	if ds.Launches()[0].Site != "CCAFS" {
		t.Error("Dataset must not alias the caller's slice")
	}

	got := ds.Launches()
	got[1].Class = 0
	if ds.Launches()[1].Class != 1 {
		t.Error("Launches() must return a copy")
	}

	sites := ds.Sites()
	sites[0] = "mutated"
	if ds.Sites()[0] != "CCAFS" {
		t.Error("Sites() must return a copy")
	}
}

func TestSiteCatalogFirstSeenOrder(t *testing.T) {
	ds := New([]Launch{
		{Site: "VAFB"}, {Site: "CCAFS"}, {Site: "VAFB"}, {Site: "KSC"}, {Site: "CCAFS"},
	})

	want := []string{"VAFB", "CCAFS", "KSC"}
	got := ds.Sites()
	if len(got) != len(want) {
		t.Fatalf("Expected %d sites, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Site %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if !ds.HasSite("KSC") || ds.HasSite("ALL") {
		t.Error("HasSite returned an unexpected result")
	}
}

func TestBoundsSkipNaN(t *testing.T) {
	ds := New([]Launch{
		{PayloadMassKg: math.NaN()},
		{PayloadMassKg: 2500},
		{PayloadMassKg: 700},
	})

	if got := ds.Bounds(); got.Min != 700 || got.Max != 2500 {
		t.Errorf("Expected bounds {700 2500}, got %+v", got)
	}
}

func TestAllStopsEarly(t *testing.T) {
	ds := New([]Launch{{Site: "a"}, {Site: "b"}, {Site: "c"}})

	var seen []string
	for l := range ds.All() {
		seen = append(seen, l.Site)
		if l.Site == "b" {
			break
		}
	}
	if len(seen) != 2 {
		t.Errorf("Expected iteration to stop after 2 launches, got %v", seen)
	}
}
