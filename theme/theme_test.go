package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voltserv/reportengine"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#0d9488", RGB{13, 148, 136}, true},
		{"0d9488", RGB{13, 148, 136}, true},
		{"#fff", RGB{255, 255, 255}, true},
		{"#ffffff", RGB{255, 255, 255}, true},
		{"", RGB{}, false},
		{"#zzzzzz", RGB{}, false},
		{"#12345", RGB{}, false},
	}
	for _, c := range cases {
		got, ok := ParseHex(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseHex(%q) = %v,%v want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestSnapshotDefaults(t *testing.T) {
	s := FromSettings(nil)
	if s.CompanyName != DefaultCompanyName {
		t.Errorf("company = %q", s.CompanyName)
	}
	if !s.IsCoverEnabled() || !s.IsBackCoverEnabled() || !s.IsHeaderFooterEnabled() {
		t.Error("toggles should default to enabled")
	}
	d := s.ReportDesign("unknown_key")
	if d.ID != DefaultDesignID || d.Color != s.Primary {
		t.Errorf("unknown key design = %+v", d)
	}
}

func TestSnapshotFromSettings(t *testing.T) {
	off := false
	doc := &reportengine.Settings{
		CompanyName:  "Acme Power",
		PrimaryColor: "#336699",
		Website:      "acme.example",
		ReportDesigns: map[string]reportengine.ReportDesignSetting{
			"amc": {DesignID: "design_3", DesignColor: "#0d9488"},
			"bad": {DesignID: "design_2", DesignColor: "not-a-color"},
		},
		BackCover: &off,
	}
	s := FromSettings(doc)

	if s.CompanyName != "Acme Power" {
		t.Errorf("company = %q", s.CompanyName)
	}
	if s.Primary != (RGB{0x33, 0x66, 0x99}) {
		t.Errorf("primary = %v", s.Primary)
	}
	if s.IsBackCoverEnabled() {
		t.Error("back cover should be disabled")
	}

	amc := s.ReportDesign("amc")
	if amc.ID != "design_3" || amc.Color != (RGB{0x0d, 0x94, 0x88}) {
		t.Errorf("amc design = %+v", amc)
	}
	// Invalid design color falls back to primary.
	bad := s.ReportDesign("bad")
	if bad.Color != s.Primary {
		t.Errorf("invalid color should fall back to primary, got %v", bad.Color)
	}
}

func TestHasLogoMissingFile(t *testing.T) {
	s := FromSettings(&reportengine.Settings{LogoPath: "/nonexistent/logo.png"})
	if s.HasLogo() {
		t.Error("missing logo file should report false")
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	data := `
company_name: Acme Power
website: acme.example
primary_color: "#336699"
report_designs:
  amc:
    design_id: design_2
    design_color: "#0d9488"
back_cover: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadDefaults(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s := FromSettings(doc)
	if s.CompanyName != "Acme Power" {
		t.Errorf("company = %q", s.CompanyName)
	}
	if s.IsBackCoverEnabled() {
		t.Error("back cover should be disabled")
	}
	if d := s.ReportDesign("amc"); d.ID != "design_2" {
		t.Errorf("design = %+v", d)
	}
}
