package spectral

import (
	"testing"
)

func testLibraryWithMeta() (*Library, []Metadata) {
	lib := NewASDLibrary(4)
	for r, row := range lib.Spectra {
		for i := range row {
			row[i] = 0.1 * float64(r+1)
		}
	}
	meta := []Metadata{
		{Name: "soil-1", Levels: [4]string{"pervious", "bare", "soil", "measured"}},
		{Name: "soil-2", Levels: [4]string{"pervious", "bare", "soil", "measured"}},
		{Name: "veg-1", Levels: [4]string{"pervious", "vegetation", "grass", "measured"}},
		{Name: "urban-1", Levels: [4]string{"impervious", "urban", "roof", "measured"}},
	}
	return lib, meta
}

func TestListTypes(t *testing.T) {
	_, meta := testLibraryWithMeta()
	types, err := ListTypes(meta, 2)
	if err != nil {
		t.Fatalf("ListTypes failed: %v", err)
	}
	want := map[string]bool{"bare": true, "vegetation": true, "urban": true}
	if len(types) != len(want) {
		t.Errorf("types = %v, want 3 distinct classes", types)
	}
	for _, v := range types {
		if !want[v] {
			t.Errorf("unexpected class %q", v)
		}
	}

	if _, err := ListTypes(meta, 5); err == nil {
		t.Error("expected error for invalid level, got nil")
	}
}

func TestTypeLevel(t *testing.T) {
	_, meta := testLibraryWithMeta()
	if level := TypeLevel(meta, "bare"); level != 2 {
		t.Errorf("level = %d, want 2", level)
	}
	if level := TypeLevel(meta, "soil"); level != 3 {
		t.Errorf("level = %d, want 3", level)
	}
	if level := TypeLevel(meta, "nonsense"); level != 0 {
		t.Errorf("level = %d, want 0", level)
	}
}

func TestSelectSpectra(t *testing.T) {
	lib, meta := testLibraryWithMeta()

	all, err := SelectSpectra(lib, meta, "bare", "Sentinel2", 0, nil)
	if err != nil {
		t.Fatalf("SelectSpectra failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("selected = %d, want 2", len(all))
	}
	if len(all[0]) != 10 {
		t.Errorf("resampled bands = %d, want 10", len(all[0]))
	}

	sampled, err := SelectSpectra(lib, meta, "bare", "Sentinel2", 5, nil)
	if err != nil {
		t.Fatalf("SelectSpectra with n failed: %v", err)
	}
	if len(sampled) != 5 {
		t.Errorf("sampled = %d, want 5", len(sampled))
	}

	subset, err := SelectSpectra(lib, meta, "bare", "Sentinel2", 0, []int{0, 3, 6})
	if err != nil {
		t.Fatalf("SelectSpectra with bands failed: %v", err)
	}
	if len(subset[0]) != 3 {
		t.Errorf("subset bands = %d, want 3", len(subset[0]))
	}
}

func TestSelectSpectra_Invalid(t *testing.T) {
	lib, meta := testLibraryWithMeta()

	if _, err := SelectSpectra(lib, meta, "nonsense", "Sentinel2", 0, nil); err == nil {
		t.Error("expected error for unknown class, got nil")
	}
	if _, err := SelectSpectra(lib, meta, "bare", "NoSuchSensor", 0, nil); err == nil {
		t.Error("expected error for unknown sensor, got nil")
	}
	if _, err := SelectSpectra(lib, meta[:2], "bare", "Sentinel2", 0, nil); err == nil {
		t.Error("expected error for mismatched metadata, got nil")
	}
}
