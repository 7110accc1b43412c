package analysis

import (
	"bytes"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

var (
	// ReportPrecision defines the number of decimal places of range bounds in rendered reports.
	// Percentages are always rendered with two decimal places.
	// This variable is not thread-safe, so this should be changed on program start.
	ReportPrecision int32 = 6
)

var reportHeader = []string{"NAME", "FORMAT", "LOWER", "UPPER", "USED %", "MIN WORD"}

// Report is a list of entries in the order the values were tracked.
type Report []Entry

// Cells returns the entry's columns as rendered by Report.WriteTo.
func (e Entry) Cells() []string {
	return []string{
		e.Name,
		e.Format.String(),
		decimal.NewFromFloat(e.Lower).StringFixed(ReportPrecision),
		decimal.NewFromFloat(e.Upper).StringFixed(ReportPrecision),
		decimal.NewFromFloat(e.Percentage).StringFixed(2),
		strconv.FormatUint(uint64(e.MinWordBits), 10),
	}
}

// Find returns the first entry with given name.
func (r Report) Find(name string) (Entry, bool) {
	for _, e := range r {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// WriteTo renders the report as a table.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	writeRow(tw, reportHeader)
	for _, e := range r {
		writeRow(tw, e.Cells())
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// String returns the rendered report.
func (r Report) String() string {
	var buf bytes.Buffer
	r.WriteTo(&buf)
	return buf.String()
}

func writeRow(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, c)
	}
	io.WriteString(w, "\n")
}
