// Package theme resolves template settings into an immutable snapshot used
// for the duration of one report build: company identity, logo, colors,
// per-report decorative design, and cover/back-cover toggles.
//
// Renderers never read settings themselves; the snapshot travels with the
// build context.
package theme

import (
	"os"
	"strings"

	"github.com/voltserv/reportengine"
)

// Default identity used when the settings document is absent or incomplete.
const (
	DefaultCompanyName  = "VoltServ Power Services"
	DefaultWebsite      = "www.voltserv.example"
	DefaultPrimaryHex   = "#1e3a8a"
	DefaultDesignID     = "design_1"
)

// Design selects a decorative cover design and its accent color for one
// report type.
type Design struct {
	ID    string
	Color RGB
}

// Snapshot is the immutable per-build view of the template settings.
type Snapshot struct {
	CompanyName    string
	AddressLines   []string
	Phone          string
	Email          string
	Website        string
	Certifications string
	LogoPath       string

	Primary RGB

	designs map[string]Design

	coverEnabled     bool
	backCoverEnabled bool
	headerFooter     bool
}

// FromSettings builds a snapshot from a settings document. A nil document
// yields the built-in defaults.
func FromSettings(doc *reportengine.Settings) *Snapshot {
	s := &Snapshot{
		CompanyName:      DefaultCompanyName,
		Website:          DefaultWebsite,
		coverEnabled:     true,
		backCoverEnabled: true,
		headerFooter:     true,
		designs:          map[string]Design{},
	}
	s.Primary, _ = ParseHex(DefaultPrimaryHex)
	if doc == nil {
		return s
	}

	if v := strings.TrimSpace(doc.CompanyName.String()); v != "" {
		s.CompanyName = v
	}
	s.AddressLines = append(s.AddressLines, doc.AddressLines...)
	s.Phone = doc.Phone.String()
	s.Email = doc.Email.String()
	if v := strings.TrimSpace(doc.Website.String()); v != "" {
		s.Website = v
	}
	s.Certifications = doc.Certifications.String()
	s.LogoPath = doc.LogoPath.String()

	if c, ok := ParseHex(doc.PrimaryColor.String()); ok {
		s.Primary = c
	}

	for key, d := range doc.ReportDesigns {
		design := Design{ID: DefaultDesignID, Color: s.Primary}
		if v := strings.TrimSpace(d.DesignID.String()); v != "" {
			design.ID = v
		}
		if c, ok := ParseHex(d.DesignColor.String()); ok {
			design.Color = c
		}
		s.designs[key] = design
	}

	if doc.CoverPage != nil {
		s.coverEnabled = *doc.CoverPage
	}
	if doc.BackCover != nil {
		s.backCoverEnabled = *doc.BackCover
	}
	if doc.HeaderFooter != nil {
		s.headerFooter = *doc.HeaderFooter
	}
	return s
}

// ReportDesign returns the design configured for a report-type key
// ("amc", "ir_thermography", "project_schedule", ...). Unknown keys get the
// default design in the primary color.
func (s *Snapshot) ReportDesign(key string) Design {
	if d, ok := s.designs[key]; ok {
		return d
	}
	return Design{ID: DefaultDesignID, Color: s.Primary}
}

// IsCoverEnabled reports whether a dedicated cover page is drawn.
func (s *Snapshot) IsCoverEnabled() bool { return s.coverEnabled }

// IsBackCoverEnabled reports whether a back cover closes the document.
func (s *Snapshot) IsBackCoverEnabled() bool { return s.backCoverEnabled }

// IsHeaderFooterEnabled reports whether body pages carry the standard
// header and footer.
func (s *Snapshot) IsHeaderFooterEnabled() bool { return s.headerFooter }

// HasLogo reports whether the configured logo file exists on disk. Drawing
// routines skip images rather than failing on a missing file.
func (s *Snapshot) HasLogo() bool {
	if s.LogoPath == "" {
		return false
	}
	info, err := os.Stat(s.LogoPath)
	return err == nil && !info.IsDir()
}

// Address returns the address lines joined for single-line contexts.
func (s *Snapshot) Address() string {
	return strings.Join(s.AddressLines, ", ")
}
