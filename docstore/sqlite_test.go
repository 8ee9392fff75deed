package docstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/voltserv/reportengine"
)

func openTest(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetAMC(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	amc := &reportengine.AMC{ID: "a1", AMCNo: "AMC/2025/0001", ProjectID: "p1"}
	if err := s.Put(ctx, CollectionAMCs, amc.ID, amc); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.AMC(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AMCNo != "AMC/2025/0001" {
		t.Errorf("amc_no = %q", got.AMCNo)
	}

	_, err = s.AMC(ctx, "missing")
	if !errors.Is(err, reportengine.ErrNotFound) {
		t.Errorf("missing amc err = %v, want ErrNotFound", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	if err := s.Put(ctx, CollectionAMCs, "a1", &reportengine.AMC{ID: "a1", AMCNo: "OLD"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, CollectionAMCs, "a1", &reportengine.AMC{ID: "a1", AMCNo: "NEW"}); err != nil {
		t.Fatal(err)
	}
	got, err := s.AMC(ctx, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if got.AMCNo != "NEW" {
		t.Errorf("amc_no = %q, want NEW", got.AMCNo)
	}
}

func TestBatchPreservesOrderSkipsMissing(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	for _, id := range []string{"t1", "t2", "t3"} {
		r := &reportengine.TestReport{ID: id, ReportNo: reportengine.Text("TR-" + id)}
		if err := s.Put(ctx, CollectionTestReports, id, r); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.TestReports(ctx, []string{"t3", "missing", "t1", "t1"})
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (missing skipped, duplicate collapsed)", len(got))
	}
	if got[0].ID != "t3" || got[1].ID != "t1" {
		t.Errorf("order = %s, %s; want t3, t1", got[0].ID, got[1].ID)
	}
}

func TestByProjectScoping(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	reports := []*reportengine.IRReport{
		{ID: "ir1", ReportNo: "IR-1", ProjectID: "p1"},
		{ID: "ir2", ReportNo: "IR-2", ProjectID: "p2"},
		{ID: "ir3", ReportNo: "IR-3", ProjectID: "p1"},
	}
	for _, r := range reports {
		if err := s.Put(ctx, CollectionIRReports, r.ID, r); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.IRReportsByProject(ctx, "p1")
	if err != nil {
		t.Fatalf("by project: %v", err)
	}
	if len(got) != 2 || got[0].ID != "ir1" || got[1].ID != "ir3" {
		t.Errorf("p1 reports = %v", got)
	}
}

func TestSettingsMissingIsNotAnError(t *testing.T) {
	s := openTest(t)
	doc, err := s.Settings(context.Background())
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if doc != nil {
		t.Errorf("doc = %+v, want nil", doc)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	in := &reportengine.Settings{CompanyName: "Acme Power", PrimaryColor: "#223344"}
	if err := s.Put(ctx, CollectionSettings, SettingsDocID, in); err != nil {
		t.Fatal(err)
	}
	got, err := s.Settings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.CompanyName != "Acme Power" {
		t.Errorf("settings = %+v", got)
	}
}

// Raw documents written by other tools may carry numbers where strings are
// expected; decoding stays tolerant.
func TestDecodeToleratesCorruptFields(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)`,
		CollectionAMCs, "a1", `{"id":"a1","amc_no":12345,"contract_details":{"contract_value":99}}`)
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.AMC(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AMCNo != "12345" {
		t.Errorf("amc_no = %q, want number coerced to string", got.AMCNo)
	}
}
