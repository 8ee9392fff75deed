package annex

import (
	"bytes"
	"fmt"

	"github.com/voltserv/reportengine/decor"
	"github.com/voltserv/reportengine/flow"
)

// Separator renders the one-page annexure separator for a category as a
// standalone PDF, ready for concatenation ahead of the category's pages.
// attached is the number of documents that actually follow the separator;
// when it falls short of the planned count the subtitle reports both, so
// readers can tell a document failed to attach.
func (p Plan) Separator(dec *decor.Decorator, c Category, attached int) ([]byte, error) {
	n := p.Number(c)
	if n == 0 {
		return nil, fmt.Errorf("annex: category %q is not present", c.Title())
	}

	count := p.Count(c)
	noun := "documents"
	if count == 1 {
		noun = "document"
	}
	subtitle := fmt.Sprintf("%d %s attached", count, noun)
	if attached < count {
		subtitle = fmt.Sprintf("%d of %d documents attached", attached, count)
	}

	doc := &flow.Document{
		Title:  c.Title(),
		Footer: dec.Footer,
		Elements: []flow.Element{
			flow.AnnexTitle{
				Number:   n,
				Title:    c.Title(),
				Subtitle: subtitle,
			},
		},
	}

	var buf bytes.Buffer
	if err := flow.Render(&buf, dec.Theme, doc); err != nil {
		return nil, fmt.Errorf("annex: separator %d: %w", n, err)
	}
	return buf.Bytes(), nil
}
