// Package export renders the transaction set for download.
package export

import (
	"io"
	"strconv"
	"strings"

	"moneta/internal/models"
)

// csvHeader matches the column order users see in the app.
var csvHeader = []string{"Date", "Type", "Category", "Description", "Amount", "Notes"}

// TransactionsCSV writes one quoted, comma-joined line per transaction with a
// header row first. Every field is double-quote wrapped; embedded quotes are
// doubled. Unresolvable categories export as "Uncategorized".
func TransactionsCSV(w io.Writer, txns []models.Transaction) error {
	var b strings.Builder
	writeRow(&b, csvHeader)

	for i := range txns {
		t := &txns[i]
		writeRow(&b, []string{
			t.Date.Format("2006-01-02"),
			string(t.Type),
			t.CategoryName(),
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			t.Notes,
		})
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
