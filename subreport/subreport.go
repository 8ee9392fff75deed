// Package subreport renders the sibling report types that a composite AMC
// report embeds: IR thermography surveys, equipment test reports, service
// request reports, project schedules, and work completion reports. Each
// engine produces a complete standalone PDF so the composer only has to
// concatenate pages.
package subreport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/theme"
)

// ClosingPolicy controls the trailing pages of a rendered sub-report.
// A standalone download keeps them; a report embedded inside a composite
// drops them so the parent's statutory trailer and back cover are the
// only closing material in the merged file.
type ClosingPolicy int

const (
	// Full keeps the declaration and sign-off page.
	Full ClosingPolicy = iota
	// NoClosing suppresses the declaration page for embedded use.
	NoClosing
)

// Renderer is what the composer needs from the sibling engines. Implemented
// by Engines; tests substitute fixed-output fakes.
type Renderer interface {
	IRThermography(ctx context.Context, id string, policy ClosingPolicy) ([]byte, error)
	EquipmentTest(ctx context.Context, id string) ([]byte, error)
	ServiceRequest(ctx context.Context, id string) ([]byte, error)
}

// Source fetches single report documents by id. The sqlite docstore
// satisfies it.
type Source interface {
	IRReport(ctx context.Context, id string) (*reportengine.IRReport, error)
	TestReport(ctx context.Context, id string) (*reportengine.TestReport, error)
	ServiceRequestByID(ctx context.Context, id string) (*reportengine.ServiceRequest, error)
	Project(ctx context.Context, id string) (*reportengine.Project, error)
}

// Engines renders every sibling report type against one theme snapshot.
type Engines struct {
	src Source
	th  *theme.Snapshot
	log *slog.Logger
	now func() time.Time
}

// NewEngines wires the sibling engines to a document source and theme.
func NewEngines(src Source, th *theme.Snapshot, log *slog.Logger) *Engines {
	if log == nil {
		log = slog.Default()
	}
	return &Engines{src: src, th: th, log: log, now: time.Now}
}

var _ Renderer = (*Engines)(nil)

// project loads the referenced project, tolerating a missing one: sibling
// reports render without project context rather than failing the parent.
func (e *Engines) project(ctx context.Context, id string) *reportengine.Project {
	if id == "" {
		return nil
	}
	pr, err := e.src.Project(ctx, id)
	if err != nil {
		e.log.Warn("subreport: project lookup failed", "project_id", id, "err", err)
		return nil
	}
	return pr
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, reportengine.ErrNotFound)
}
