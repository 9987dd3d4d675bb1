package theme

import "testing"

func TestLoad(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if th.Name != name {
				t.Errorf("got name %q, want %q", th.Name, name)
			}
			if th.Bg == "" || th.Fg == "" || th.Accent == "" {
				t.Error("theme is missing base colors")
			}
		})
	}
}

func TestLoad_UnknownFallsBackToMocha(t *testing.T) {
	th, err := Load("dracula")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("got %q, want mocha fallback", th.Name)
	}
}

func TestLoad_EmptyDefaultsToMocha(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("got %q, want mocha", th.Name)
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Synthwave") {
		t.Error("expected case-insensitive match")
	}
	if IsAvailable("nord") {
		t.Error("nord should not be available")
	}
}
