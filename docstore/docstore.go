// Package docstore reads the ERP's report documents from a sqlite database
// of JSON document rows, one collection per report type. The composer and
// sibling engines only ever read; writes happen through Put, which the
// import tooling and tests use to seed data.
package docstore

import (
	"context"

	"github.com/voltserv/reportengine"
)

// Collection names. IR thermography reports live under the canonical
// collection regardless of what legacy exports called it.
const (
	CollectionAMCs            = "amcs"
	CollectionProjects        = "projects"
	CollectionSettings        = "settings"
	CollectionTestReports     = "test_reports"
	CollectionIRReports       = "ir_thermography_reports"
	CollectionServiceRequests = "service_requests"
)

// SettingsDocID is the fixed id of the template-settings document.
const SettingsDocID = "template_settings"

// Store is the read surface the report builders depend on. Lookups by id
// return reportengine.ErrNotFound (wrapped) for missing documents; batch
// lookups skip missing ids silently.
type Store interface {
	AMC(ctx context.Context, id string) (*reportengine.AMC, error)
	Project(ctx context.Context, id string) (*reportengine.Project, error)
	Settings(ctx context.Context) (*reportengine.Settings, error)

	IRReport(ctx context.Context, id string) (*reportengine.IRReport, error)
	TestReport(ctx context.Context, id string) (*reportengine.TestReport, error)
	ServiceRequestByID(ctx context.Context, id string) (*reportengine.ServiceRequest, error)

	TestReports(ctx context.Context, ids []string) ([]reportengine.TestReport, error)
	IRReports(ctx context.Context, ids []string) ([]reportengine.IRReport, error)
	ServiceRequests(ctx context.Context, ids []string) ([]reportengine.ServiceRequest, error)

	TestReportsByProject(ctx context.Context, projectID string) ([]reportengine.TestReport, error)
	IRReportsByProject(ctx context.Context, projectID string) ([]reportengine.IRReport, error)
	ServiceRequestsByProject(ctx context.Context, projectID string) ([]reportengine.ServiceRequest, error)
}
