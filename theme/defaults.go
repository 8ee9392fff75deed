package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voltserv/reportengine"
)

// defaultsFile mirrors the settings document for hosts that configure the
// engine from a yaml file instead of the settings collection.
type defaultsFile struct {
	CompanyName    string   `yaml:"company_name"`
	AddressLines   []string `yaml:"address_lines"`
	Phone          string   `yaml:"phone"`
	Email          string   `yaml:"email"`
	Website        string   `yaml:"website"`
	Certifications string   `yaml:"certifications"`
	LogoPath       string   `yaml:"logo_path"`
	PrimaryColor   string   `yaml:"primary_color"`
	ReportDesigns  map[string]struct {
		DesignID    string `yaml:"design_id"`
		DesignColor string `yaml:"design_color"`
	} `yaml:"report_designs"`
	CoverPage    *bool `yaml:"cover_page"`
	BackCover    *bool `yaml:"back_cover"`
	HeaderFooter *bool `yaml:"header_footer"`
}

// LoadDefaults reads a yaml defaults file into a settings document. The
// result feeds FromSettings the same way a stored document would.
func LoadDefaults(path string) (*reportengine.Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: reading defaults %s: %w", path, err)
	}
	var f defaultsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("theme: parsing defaults %s: %w", path, err)
	}

	doc := &reportengine.Settings{
		CompanyName:    reportengine.Text(f.CompanyName),
		AddressLines:   f.AddressLines,
		Phone:          reportengine.Text(f.Phone),
		Email:          reportengine.Text(f.Email),
		Website:        reportengine.Text(f.Website),
		Certifications: reportengine.Text(f.Certifications),
		LogoPath:       reportengine.Text(f.LogoPath),
		PrimaryColor:   reportengine.Text(f.PrimaryColor),
		CoverPage:      f.CoverPage,
		BackCover:      f.BackCover,
		HeaderFooter:   f.HeaderFooter,
	}
	if len(f.ReportDesigns) > 0 {
		doc.ReportDesigns = make(map[string]reportengine.ReportDesignSetting, len(f.ReportDesigns))
		for key, d := range f.ReportDesigns {
			doc.ReportDesigns[key] = reportengine.ReportDesignSetting{
				DesignID:    reportengine.Text(d.DesignID),
				DesignColor: reportengine.Text(d.DesignColor),
			}
		}
	}
	return doc, nil
}
