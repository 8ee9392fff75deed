package reportengine

import (
	"encoding/json"
	"testing"
)

func TestTextToleratesMalformedFields(t *testing.T) {
	cases := []struct {
		in   string
		want Text
	}{
		{`"plain"`, "plain"},
		{`42`, "42"},
		{`4.5`, "4.5"},
		{`true`, "true"},
		{`null`, ""},
		{`{"nested":"object"}`, ""},
		{`["array"]`, ""},
	}
	for _, c := range cases {
		var got Text
		if err := json.Unmarshal([]byte(c.in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Text(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTextOr(t *testing.T) {
	if got := Text("").Or("fallback"); got != "fallback" {
		t.Errorf("empty Or = %q", got)
	}
	if got := Text("value").Or("fallback"); got != "value" {
		t.Errorf("non-empty Or = %q", got)
	}
}

func TestAMCDecodeWithCorruptFields(t *testing.T) {
	// A nested object where a string is expected must decode to empty,
	// not fail the build.
	doc := `{
		"id": "a1",
		"amc_no": "AMC/2025/0001",
		"project_id": {"oid": "p1"},
		"contract_details": {"contract_no": 1234, "scope_of_work": null},
		"status": "active"
	}`
	var amc AMC
	if err := json.Unmarshal([]byte(doc), &amc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if amc.AMCNo != "AMC/2025/0001" {
		t.Errorf("amc_no = %q", amc.AMCNo)
	}
	if amc.ProjectID != "" {
		t.Errorf("corrupt project_id should decode empty, got %q", amc.ProjectID)
	}
	if amc.ContractDetails.ContractNo != "1234" {
		t.Errorf("numeric contract_no = %q", amc.ContractDetails.ContractNo)
	}
}

func TestRiskDistribution(t *testing.T) {
	var total RiskDistribution
	total.Add(RiskDistribution{Critical: 1, Warning: 2, CheckMonitor: 3, Normal: 4})
	total.Add(RiskDistribution{Warning: 1})

	if total.Total() != 11 {
		t.Errorf("total = %d, want 11", total.Total())
	}
	if got := total.Summary(); got != "C:1 W:3 CM:3 N:4" {
		t.Errorf("summary = %q", got)
	}
	if (RiskDistribution{}).IsZero() != true {
		t.Error("zero distribution should report IsZero")
	}
	if len(SeverityLabels()) != len(total.Buckets()) {
		t.Error("labels and buckets must align")
	}
}
