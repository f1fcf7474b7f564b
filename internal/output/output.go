// Package output renders generated cards for humans and tools.
package output

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alovak/testcards/internal/cardgen"
)

// Format is an output format name as accepted on the command line.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatTable   Format = "table"
	FormatISO8583 Format = "iso8583"
)

var formats = []Format{FormatText, FormatJSON, FormatCSV, FormatTable, FormatISO8583}

// Formats returns every supported format.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat maps a format name to a Format; the empty string means text.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	names := make([]string, len(formats))
	for i, known := range formats {
		names[i] = string(known)
	}
	return "", fmt.Errorf("unknown output format: %s. Valid formats: %s", s, strings.Join(names, ", "))
}

// ContentType returns the MIME type used when the format is served over HTTP.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Fields lists the card fields in serialization order.
var Fields = []string{
	"card_type",
	"card_number",
	"card_number_formatted",
	"cvv",
	"expiry_month",
	"expiry_year",
	"expiry_year_full",
	"expiry_date",
	"cardholder_name",
}

func fieldValues(c *cardgen.Card) []string {
	return []string{
		c.Type,
		c.Number,
		c.NumberFormatted,
		c.CVV,
		c.ExpiryMonth,
		c.ExpiryYear,
		c.ExpiryYearFull,
		c.ExpiryDate,
		c.CardholderName,
	}
}

const rule = "=================================================="

// Render writes cards to w in format f. Every format except csv with no cards ends
// with a newline.
func Render(w io.Writer, f Format, cards []*cardgen.Card) error {
	switch f {
	case FormatJSON:
		return renderJSON(w, cards)
	case FormatCSV:
		return renderCSV(w, cards)
	case FormatTable:
		return renderLines(w, tableLines(cards))
	case FormatISO8583:
		return renderISO8583(w, cards)
	case FormatText, "":
		return renderLines(w, textLines(cards))
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// RenderTypes writes the supported card types listing.
func RenderTypes(w io.Writer, types []cardgen.CardType) error {
	lines := []string{"Available card types:"}
	for _, ct := range types {
		lines = append(lines, fmt.Sprintf("  %-12s - %s", ct.Key, ct.Name))
	}
	return renderLines(w, lines)
}

func renderJSON(w io.Writer, cards []*cardgen.Card) error {
	if cards == nil {
		cards = []*cardgen.Card{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func renderCSV(w io.Writer, cards []*cardgen.Card) error {
	if len(cards) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Fields); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, c := range cards {
		if err := cw.Write(fieldValues(c)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func tableLines(cards []*cardgen.Card) []string {
	var lines []string
	for _, c := range cards {
		lines = append(lines,
			rule,
			"Card Type:    "+c.Type,
			"Card Number:  "+c.NumberFormatted,
			"Cardholder:   "+c.CardholderName,
			"Expiry Date:  "+c.ExpiryDate,
			"CVV:          "+c.CVV,
			rule,
		)
	}
	return lines
}

func textLines(cards []*cardgen.Card) []string {
	var lines []string
	for i, c := range cards {
		if len(cards) > 1 {
			lines = append(lines, "", rule, fmt.Sprintf("CARD #%d", i+1), rule)
		}
		lines = append(lines,
			c.Type,
			"Number:     "+c.NumberFormatted,
			"Cardholder: "+c.CardholderName,
			"Expiry:     "+c.ExpiryDate,
			"CVV:        "+c.CVV,
		)
	}
	return lines
}

func renderLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
