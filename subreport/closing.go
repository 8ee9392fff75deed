package subreport

import (
	"github.com/voltserv/reportengine/decor"
	"github.com/voltserv/reportengine/flow"
)

// declaration is the sign-off page shared by the standalone sub-report
// renderings. Embedded copies skip it via ClosingPolicy.
func declaration(dec *decor.Decorator, preparedBy string) []flow.Element {
	if preparedBy == "" {
		preparedBy = "-"
	}
	return []flow.Element{
		flow.Banner{Text: "Declaration"},
		flow.Paragraph{
			Text: "We hereby certify that the work described in this report was carried out " +
				"and the readings recorded are true to the best of our knowledge. The " +
				"observations and recommendations are based on the condition of the " +
				"equipment at the time of inspection.",
		},
		flow.Spacer{H: 14},
		flow.Table{
			Widths: []float64{0, 0, 0},
			Aligns: []string{"C", "C", "C"},
			Rows: [][]string{
				{preparedBy, "", ""},
				{"Prepared By", "Verified By", "Approved By"},
			},
		},
		flow.Spacer{H: 4},
		flow.Note{Text: "For " + dec.Theme.CompanyName, Centered: true},
	}
}
