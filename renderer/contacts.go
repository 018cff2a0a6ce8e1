package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/sardorm/fruitbook"
)

// ContactsMarkdown renders a contact registry as a markdown table, in the
// order parties first traded.
func ContactsMarkdown(title string, reg *fruitbook.ContactRegistry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if reg.Len() == 0 {
		doc.PlainText("No contacts yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Name", "Phone", "Last Transaction"},
	}
	for r := range reg.Contacts() {
		table.Rows = append(table.Rows, []string{
			r.Name,
			r.Phone,
			r.LastTransaction.Format(displayTime),
		})
	}
	doc.Table(table)

	return doc.String()
}
