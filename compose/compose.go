// Package compose orchestrates a composite AMC report build: it gathers
// the contract and its linked sub-report documents, renders the sectioned
// main body, renders or loads every annexure block, and concatenates the
// parts into one PDF with the back cover last.
package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	gofpdf "github.com/lvillar/gofpdf"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/annex"
	"github.com/voltserv/reportengine/decor"
	"github.com/voltserv/reportengine/docstore"
	"github.com/voltserv/reportengine/flow"
	"github.com/voltserv/reportengine/section"
	"github.com/voltserv/reportengine/subreport"
	"github.com/voltserv/reportengine/theme"
)

// Composer builds composite AMC reports from a document store.
type Composer struct {
	store      docstore.Store
	uploadsDir string
	log        *slog.Logger
	now        func() time.Time
	sub        subreport.Renderer
}

// New creates a Composer over a document store.
func New(store docstore.Store, opts ...Option) *Composer {
	c := &Composer{
		store:      store,
		uploadsDir: DefaultUploadsDir(),
		log:        slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FileName is the download name for a composite report,
// e.g. "AMC_Report_AMC_2025_0001.pdf".
func FileName(amcNo string) string {
	amcNo = strings.TrimSpace(amcNo)
	if amcNo == "" {
		amcNo = "report"
	}
	return "AMC_Report_" + strings.ReplaceAll(amcNo, "/", "_") + ".pdf"
}

// BuildAMCReport renders the complete composite report for one contract.
// A missing AMC returns reportengine.ErrNotFound; missing sub-reports and
// statutory files are logged and skipped; rendering failures surface as
// *reportengine.RenderError.
func (c *Composer) BuildAMCReport(ctx context.Context, amcID string) ([]byte, error) {
	amc, err := c.store.AMC(ctx, amcID)
	if err != nil {
		return nil, err
	}

	var project *reportengine.Project
	if pid := amc.ProjectID.String(); pid != "" {
		project, err = c.store.Project(ctx, pid)
		if err != nil && !errors.Is(err, reportengine.ErrNotFound) {
			return nil, reportengine.NewRenderError("load project", err)
		}
		if project == nil {
			c.log.Warn("project not found, continuing without it", "amc", amcID, "project", pid)
		}
	}

	settings, err := c.store.Settings(ctx)
	if err != nil {
		return nil, reportengine.NewRenderError("load settings", err)
	}
	th := theme.FromSettings(settings)

	gathered, err := c.gather(ctx, amc)
	if err != nil {
		return nil, reportengine.NewRenderError("gather sub-reports", err)
	}

	statutoryFiles := c.statutoryFiles(amc)
	plan := annex.NewPlan(len(gathered.ir), len(gathered.tests), len(gathered.requests), len(statutoryFiles))

	dec := decor.New(th, "amc", "AMC Composite Service Report", amc.AMCNo.String())
	main, err := c.renderBody(amc, project, th, plan, gathered, dec)
	if err != nil {
		return nil, reportengine.NewRenderError("render body", err)
	}

	parts := [][]byte{main}
	parts = append(parts, c.annexureParts(ctx, th, dec, plan, gathered, statutoryFiles)...)

	if th.IsBackCoverEnabled() {
		back, err := dec.BackCover()
		if err != nil {
			return nil, reportengine.NewRenderError("render back cover", err)
		}
		parts = append(parts, back)
	}

	var out bytes.Buffer
	if err := mergeParts(&out, parts...); err != nil {
		return nil, reportengine.NewRenderError("merge", err)
	}
	return out.Bytes(), nil
}

// gathered holds the dependent documents of one build, already in render
// order.
type gathered struct {
	ir       []reportengine.IRReport
	tests    []reportengine.TestReport
	requests []reportengine.ServiceRequest
	risk     reportengine.RiskDistribution
}

// gather collects the sub-report documents linked from the visits, falling
// back to project-scoped queries for categories with no visit links.
func (c *Composer) gather(ctx context.Context, amc *reportengine.AMC) (*gathered, error) {
	var testIDs, irIDs, reqIDs []string
	for _, v := range amc.ServiceVisits {
		testIDs = append(testIDs, v.TestReportIDs...)
		irIDs = append(irIDs, v.IRReportIDs...)
		reqIDs = append(reqIDs, v.ServiceReportIDs...)
	}
	testIDs = dedupe(testIDs)
	irIDs = dedupe(irIDs)
	reqIDs = dedupe(reqIDs)

	g := &gathered{}
	pid := amc.ProjectID.String()
	var err error

	if len(testIDs) > 0 {
		g.tests, err = c.store.TestReports(ctx, testIDs)
	} else if pid != "" {
		g.tests, err = c.store.TestReportsByProject(ctx, pid)
	}
	if err != nil {
		return nil, fmt.Errorf("test reports: %w", err)
	}

	if len(irIDs) > 0 {
		g.ir, err = c.store.IRReports(ctx, irIDs)
	} else if pid != "" {
		g.ir, err = c.store.IRReportsByProject(ctx, pid)
	}
	if err != nil {
		return nil, fmt.Errorf("ir reports: %w", err)
	}

	if len(reqIDs) > 0 {
		g.requests, err = c.store.ServiceRequests(ctx, reqIDs)
	} else if pid != "" {
		g.requests, err = c.store.ServiceRequestsByProject(ctx, pid)
	}
	if err != nil {
		return nil, fmt.Errorf("service requests: %w", err)
	}

	section.SortTestReports(g.tests, amc.EquipmentList)

	for _, r := range g.ir {
		risk := r.Risk
		if risk.IsZero() {
			for _, it := range r.Items {
				risk.Count(it.Severity.String())
			}
		}
		g.risk.Add(risk)
	}
	return g, nil
}

// dependencyMissing tags a skipped sub-report or file failure with the
// recoverable error kind for the build log.
func dependencyMissing(err error) error {
	return fmt.Errorf("%w: %v", reportengine.ErrDependencyMissing, err)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// renderBody produces the main document: cover, TOC, and sections A-last.
func (c *Composer) renderBody(amc *reportengine.AMC, project *reportengine.Project,
	th *theme.Snapshot, plan annex.Plan, g *gathered, dec *decor.Decorator) ([]byte, error) {

	in := &section.Inputs{
		AMC:             amc,
		Project:         project,
		Theme:           th,
		Plan:            plan,
		TestReports:     g.tests,
		IRReports:       g.ir,
		ServiceRequests: g.requests,
		RiskTotals:      g.risk,
		Now:             c.now(),
	}

	doc := &flow.Document{
		Title:    "AMC Composite Service Report " + amc.AMCNo.String(),
		Author:   th.CompanyName,
		Header:   dec.Header,
		Footer:   dec.Footer,
		Elements: section.Build(in),
	}
	if th.IsCoverEnabled() {
		doc.Cover = func(pdf *gofpdf.Fpdf) {
			dec.Cover(pdf, decor.CoverInfo{
				TitleLine1: "ANNUAL MAINTENANCE CONTRACT",
				TitleLine2: "COMPOSITE SERVICE REPORT",
				Subtitle:   amc.AMCNo.String(),
				Fields:     coverFields(amc, project),
			})
		}
	}

	var buf bytes.Buffer
	if err := flow.Render(&buf, th, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func coverFields(amc *reportengine.AMC, project *reportengine.Project) []decor.Field {
	name, location := "", ""
	if amc.CustomerInfo != nil {
		name = amc.CustomerInfo.CustomerName.String()
		location = amc.CustomerInfo.SiteLocation.String()
	}
	if project != nil {
		if name == "" {
			name = project.Client.String()
		}
		if location == "" {
			location = project.Location.String()
		}
	}
	fields := []decor.Field{
		{Label: "Customer", Value: name, Wrap: true},
		{Label: "Location", Value: location, Wrap: true},
		{Label: "AMC No", Value: amc.AMCNo.String()},
	}
	start := reportengine.FormatDate(amc.ContractDetails.StartDate.String())
	end := reportengine.FormatDate(amc.ContractDetails.EndDate.String())
	if start != "" || end != "" {
		fields = append(fields, decor.Field{Label: "Contract Period", Value: start + " to " + end})
	}
	return fields
}

// annexureParts renders every annexure block in sequencer order: separator
// page, then the category's document pages. Every planned category gets its
// separator even when renders fail, so the annexure numbers the body and
// TOC reference stay dense and true; the separator subtitle reports how
// many documents actually follow.
func (c *Composer) annexureParts(ctx context.Context, th *theme.Snapshot,
	dec *decor.Decorator, plan annex.Plan, g *gathered, statutoryFiles []string) [][]byte {

	ren := c.sub
	if ren == nil {
		src, ok := c.store.(subreport.Source)
		if ok {
			ren = subreport.NewEngines(src, th, c.log)
		}
	}

	var parts [][]byte
	appendCategory := func(cat annex.Category, docs [][]byte) {
		sep, err := plan.Separator(dec, cat, len(docs))
		if err != nil {
			c.log.Error("annexure separator failed", "category", cat.Title(), "err", err)
			return
		}
		if len(docs) < plan.Count(cat) {
			c.log.Warn("annexure incomplete", "category", cat.Title(),
				"attached", len(docs), "planned", plan.Count(cat))
		}
		parts = append(parts, sep)
		parts = append(parts, docs...)
	}

	if plan.Has(annex.IRThermography) {
		var docs [][]byte
		for _, r := range g.ir {
			if ren == nil {
				break
			}
			pdf, err := ren.IRThermography(ctx, r.ID, subreport.NoClosing)
			if err != nil {
				c.log.Warn("ir sub-report skipped", "id", r.ID, "err", dependencyMissing(err))
				continue
			}
			docs = append(docs, pdf)
		}
		appendCategory(annex.IRThermography, docs)
	}

	if plan.Has(annex.EquipmentTests) {
		var docs [][]byte
		for _, r := range g.tests {
			if ren == nil {
				break
			}
			pdf, err := ren.EquipmentTest(ctx, r.ID)
			if err != nil {
				c.log.Warn("test sub-report skipped", "id", r.ID, "err", dependencyMissing(err))
				continue
			}
			docs = append(docs, pdf)
		}
		appendCategory(annex.EquipmentTests, docs)
	}

	if plan.Has(annex.ServiceReports) {
		var docs [][]byte
		for _, r := range g.requests {
			if ren == nil {
				break
			}
			pdf, err := ren.ServiceRequest(ctx, r.ID)
			if err != nil {
				c.log.Warn("service sub-report skipped", "id", r.ID, "err", dependencyMissing(err))
				continue
			}
			docs = append(docs, pdf)
		}
		appendCategory(annex.ServiceReports, docs)
	}

	if plan.Has(annex.StatutoryDocuments) {
		var docs [][]byte
		for _, file := range statutoryFiles {
			data, err := readPDFFile(file)
			if err != nil {
				c.log.Warn("statutory file skipped", "file", file, "err", dependencyMissing(err))
				continue
			}
			docs = append(docs, data)
		}
		appendCategory(annex.StatutoryDocuments, docs)
	}

	return parts
}

// statutoryFiles resolves the uploaded statutory attachments to local
// paths under the uploads directory. Only PDFs are appendable.
func (c *Composer) statutoryFiles(amc *reportengine.AMC) []string {
	var files []string
	for _, d := range amc.StatutoryDocuments {
		u := strings.TrimSpace(d.FileURL.String())
		if u == "" {
			continue
		}
		name := path.Base(strings.ReplaceAll(u, "\\", "/"))
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(c.uploadsDir, name))
	}
	return files
}
