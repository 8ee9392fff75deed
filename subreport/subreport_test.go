package subreport

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lvillar/gofpdf/reader"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/theme"
)

type memSource struct {
	ir       map[string]*reportengine.IRReport
	tests    map[string]*reportengine.TestReport
	requests map[string]*reportengine.ServiceRequest
	projects map[string]*reportengine.Project
}

func (m *memSource) IRReport(_ context.Context, id string) (*reportengine.IRReport, error) {
	if r, ok := m.ir[id]; ok {
		return r, nil
	}
	return nil, reportengine.ErrNotFound
}

func (m *memSource) TestReport(_ context.Context, id string) (*reportengine.TestReport, error) {
	if r, ok := m.tests[id]; ok {
		return r, nil
	}
	return nil, reportengine.ErrNotFound
}

func (m *memSource) ServiceRequestByID(_ context.Context, id string) (*reportengine.ServiceRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, reportengine.ErrNotFound
}

func (m *memSource) Project(_ context.Context, id string) (*reportengine.Project, error) {
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, reportengine.ErrNotFound
}

func testEngines(src *memSource) *Engines {
	e := NewEngines(src, theme.FromSettings(nil), nil)
	e.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }
	return e
}

func pageCount(t *testing.T, pdf []byte) int {
	t.Helper()
	doc, err := reader.ReadFrom(bytes.NewReader(pdf))
	if err != nil {
		t.Fatalf("read rendered pdf: %v", err)
	}
	return doc.NumPages()
}

func sampleIR() *reportengine.IRReport {
	return &reportengine.IRReport{
		ID:             "ir1",
		ReportNo:       "IR/2025/014",
		ProjectID:      "p1",
		SiteLocation:   "Main substation, Plant 2",
		InspectionDate: "2025-05-10",
		InspectedBy:    "S. Kulkarni",
		Items: []reportengine.IRItem{
			{Location: "Panel P1", Equipment: "Busbar joint", Phase: "R", MaxTempC: 78.4, RefTempC: 41.0, Severity: "Critical", Observation: "Hot joint"},
			{Location: "Panel P2", Equipment: "Cable lug", Phase: "Y", MaxTempC: 52.1, RefTempC: 40.2, Severity: "Warning"},
			{Location: "Panel P3", Equipment: "MCCB", Phase: "B", MaxTempC: 41.9, RefTempC: 40.5, Severity: "Normal"},
		},
	}
}

func TestIRThermographyClosingPolicy(t *testing.T) {
	src := &memSource{
		ir:       map[string]*reportengine.IRReport{"ir1": sampleIR()},
		projects: map[string]*reportengine.Project{"p1": {ID: "p1", Client: "Acme Mills", ProjectName: "Plant 2 HT"}},
	}
	e := testEngines(src)

	full, err := e.IRThermography(context.Background(), "ir1", Full)
	if err != nil {
		t.Fatalf("full render: %v", err)
	}
	embedded, err := e.IRThermography(context.Background(), "ir1", NoClosing)
	if err != nil {
		t.Fatalf("embedded render: %v", err)
	}

	fp, ep := pageCount(t, full), pageCount(t, embedded)
	if fp != ep+1 {
		t.Errorf("full = %d pages, embedded = %d; want exactly one extra declaration page", fp, ep)
	}
	if ep < 2 {
		t.Errorf("embedded = %d pages, want cover plus body", ep)
	}
	t.Logf("ir report: full %d pages, embedded %d pages", fp, ep)
}

func TestIRThermographyNotFound(t *testing.T) {
	e := testEngines(&memSource{ir: map[string]*reportengine.IRReport{}})
	_, err := e.IRThermography(context.Background(), "missing", Full)
	if !errors.Is(err, reportengine.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestIRThermographyToleratesMissingProject(t *testing.T) {
	ir := sampleIR()
	ir.ProjectID = "gone"
	e := testEngines(&memSource{ir: map[string]*reportengine.IRReport{"ir1": ir}})
	out, err := e.IRThermography(context.Background(), "ir1", NoClosing)
	if err != nil {
		t.Fatalf("render without project: %v", err)
	}
	if pageCount(t, out) < 2 {
		t.Error("report should still render without its project")
	}
}

func TestEquipmentTestNominalChecklist(t *testing.T) {
	src := &memSource{tests: map[string]*reportengine.TestReport{
		"t1": {
			ID:            "t1",
			ReportNo:      "TR/2025/031",
			EquipmentType: "Transformer",
			EquipmentName: "TX-1 2000kVA",
			TestDate:      "2025-05-12",
			TestedBy:      "R. Iyer",
			Result:        "Pass",
		},
	}}
	e := testEngines(src)
	out, err := e.EquipmentTest(context.Background(), "t1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if pageCount(t, out) < 2 {
		t.Error("test report should have a cover and a body page")
	}
}

func TestEquipmentTypeNormalization(t *testing.T) {
	cases := map[string]string{
		"Transformer":        "transformer",
		"Distribution Transformer": "transformer",
		"ACB 3200A":          "acb",
		"Air Circuit Breaker": "acb",
		"Numerical Relay":    "relay",
		"Battery Bank 110V":  "battery",
		"UPS":                "ups",
	}
	for in, want := range cases {
		if got := normalizeEquipmentType(in); got != want {
			t.Errorf("normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestServiceRequestRender(t *testing.T) {
	src := &memSource{requests: map[string]*reportengine.ServiceRequest{
		"sr1": {
			ID:          "sr1",
			RequestNo:   "SR/2025/007",
			RequestDate: "2025-04-22",
			Equipment:   "DG Set 500kVA",
			Description: "AMF panel not starting the set on mains failure.",
			ActionTaken: "Replaced faulty battery charger fuse, tested auto start.",
			Status:      "Closed",
		},
	}}
	e := testEngines(src)
	out, err := e.ServiceRequest(context.Background(), "sr1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if pageCount(t, out) < 2 {
		t.Error("service request report should have a cover and a body page")
	}
}

func TestProjectScheduleGrid(t *testing.T) {
	amc := &reportengine.AMC{
		ID:    "a1",
		AMCNo: "AMC/2025/0001",
		ContractDetails: reportengine.ContractDetails{
			StartDate: "2025-04-01",
			EndDate:   "2026-03-31",
		},
		EquipmentList: []reportengine.EquipmentItem{
			{EquipmentType: "transformer", EquipmentName: "TX-1", ServiceFrequency: "Quarterly"},
			{EquipmentType: "acb", EquipmentName: "ACB-1", ServiceFrequency: "Monthly"},
		},
		ServiceVisits: []reportengine.ServiceVisit{
			{VisitDate: "2025-06-10", Status: "completed", EquipmentServiced: []string{"TX-1"}},
		},
	}
	e := testEngines(&memSource{})
	out, err := e.ProjectSchedule(amc, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if pageCount(t, out) != 2 {
		t.Errorf("schedule = %d pages, want cover + grid", pageCount(t, out))
	}
}

func TestFrequencyInterval(t *testing.T) {
	cases := map[string]int{
		"Monthly":     1,
		"quarterly":   3,
		"Half-Yearly": 6,
		"Yearly":      12,
		"on demand":   0,
		"":            0,
	}
	for in, want := range cases {
		if got := frequencyInterval(in); got != want {
			t.Errorf("frequencyInterval(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestContractMonthsClamped(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if got := contractMonths(start, "2026-03-31"); got != 12 {
		t.Errorf("one-year contract = %d months, want 12", got)
	}
	if got := contractMonths(start, "2030-03-31"); got != 12 {
		t.Errorf("multi-year contract should clamp to 12, got %d", got)
	}
	if got := contractMonths(start, "2025-06-30"); got != 3 {
		t.Errorf("quarter contract = %d months, want 3", got)
	}
	if got := contractMonths(start, "not a date"); got != 12 {
		t.Errorf("unparseable end should default to 12, got %d", got)
	}
}

func TestWorkCompletionRender(t *testing.T) {
	amc := &reportengine.AMC{
		ID:    "a1",
		AMCNo: "AMC/2025/0001",
		ServiceVisits: []reportengine.ServiceVisit{
			{VisitDate: "2025-05-02", VisitType: "Preventive", Status: "completed", TechnicianName: "R. Iyer"},
			{VisitDate: "2025-08-02", VisitType: "Preventive", Status: "scheduled"},
		},
	}
	e := testEngines(&memSource{})
	out, err := e.WorkCompletion(amc, &reportengine.Project{Client: "Acme Mills"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if pageCount(t, out) < 2 {
		t.Error("work completion should have a cover and a body page")
	}
}
