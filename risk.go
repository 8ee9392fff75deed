package reportengine

import (
	"fmt"
	"strings"
)

// RiskDistribution is the four-bucket severity histogram produced by IR
// thermography inspections.
type RiskDistribution struct {
	Critical     int `json:"critical"`
	Warning      int `json:"warning"`
	CheckMonitor int `json:"check_monitor"`
	Normal       int `json:"normal"`
}

// Total returns the number of inspection items across all buckets.
func (r RiskDistribution) Total() int {
	return r.Critical + r.Warning + r.CheckMonitor + r.Normal
}

// IsZero reports whether no items were counted.
func (r RiskDistribution) IsZero() bool { return r.Total() == 0 }

// Add accumulates another distribution into r.
func (r *RiskDistribution) Add(o RiskDistribution) {
	r.Critical += o.Critical
	r.Warning += o.Warning
	r.CheckMonitor += o.CheckMonitor
	r.Normal += o.Normal
}

// Count increments the bucket matching a severity label. Unknown labels
// count as Normal.
func (r *RiskDistribution) Count(severity string) {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "critical":
		r.Critical++
	case "warning":
		r.Warning++
	case "check & monitor", "check and monitor", "check_monitor", "check/monitor":
		r.CheckMonitor++
	default:
		r.Normal++
	}
}

// Summary renders the per-report shorthand used in listing rows,
// e.g. "C:1 W:2 CM:3 N:4".
func (r RiskDistribution) Summary() string {
	return fmt.Sprintf("C:%d W:%d CM:%d N:%d", r.Critical, r.Warning, r.CheckMonitor, r.Normal)
}

// SeverityLabels returns the bucket names in fixed display order.
func SeverityLabels() []string {
	return []string{"Critical", "Warning", "Check & Monitor", "Normal"}
}

// Buckets returns the counts in the same order as SeverityLabels.
func (r RiskDistribution) Buckets() []int {
	return []int{r.Critical, r.Warning, r.CheckMonitor, r.Normal}
}
