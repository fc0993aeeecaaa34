package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/amirasaad/transparency/pkg/deferral"
	currencysvc "github.com/amirasaad/transparency/pkg/service/currency"
	deferralsvc "github.com/amirasaad/transparency/pkg/service/deferral"
	"github.com/fatih/color"
)

// Printer renders results as coloured text or JSON.
type Printer struct {
	w    io.Writer
	json bool

	header   *color.Color
	realTime *color.Color
	short    *color.Color
	long     *color.Color
	sentinel *color.Color
	note     *color.Color
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, colorize, asJSON bool) *Printer {
	p := &Printer{
		w:        w,
		json:     asJSON,
		header:   color.New(color.Bold),
		realTime: color.New(color.FgGreen),
		short:    color.New(color.FgCyan),
		long:     color.New(color.FgYellow),
		sentinel: color.New(color.FgRed, color.Bold),
		note:     color.New(color.Faint, color.Italic),
	}
	for _, c := range []*color.Color{p.header, p.realTime, p.short, p.long, p.sentinel, p.note} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) labelColor(l deferral.Label) *color.Color {
	switch {
	case l.IsSentinel():
		return p.sentinel
	case l.Tier == deferral.TierRealTime:
		return p.realTime
	case l.Tier == deferral.TierLong:
		return p.long
	default:
		return p.short
	}
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Assessment prints every result of a.
func (p *Printer) Assessment(a *deferralsvc.Assessment) error {
	if p.json {
		return p.encode(a)
	}
	title := "Assessment " + a.ID.String()
	if a.Category != "" {
		title += " (" + string(a.Category) + ")"
	}
	if _, err := p.header.Fprintln(p.w, title); err != nil {
		return err
	}
	for _, r := range a.Results {
		_, err := fmt.Fprintf(p.w, "  %-2s %-20s %s\n",
			r.Regime, r.Variant, p.labelColor(r.Label).Sprint(r.Label.Text))
		if err != nil {
			return err
		}
	}
	for _, n := range a.Notes {
		if _, err := fmt.Fprintf(p.w, "  %s\n", p.note.Sprint(n)); err != nil {
			return err
		}
	}
	return nil
}

// Normalized is one amount in both reporting currencies.
type Normalized struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	EUR      string `json:"eur"`
	GBP      string `json:"gbp"`
}

// Normalized prints an amount in both reporting currencies.
func (p *Printer) Normalized(n Normalized) error {
	if p.json {
		return p.encode(n)
	}
	_, err := fmt.Fprintf(p.w, "%s %s = %s EUR = %s GBP\n", n.Amount, n.Currency, n.EUR, n.GBP)
	return err
}

// Currencies prints the currency listing as a table.
func (p *Printer) Currencies(ls []currencysvc.Listing) error {
	if p.json {
		return p.encode(ls)
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	if _, err := p.header.Fprintln(tw, "CODE\tNAME\tSYMBOL\tEUR RATE\tGBP RATE"); err != nil {
		return err
	}
	for _, l := range ls {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.Code, l.Name, l.Symbol, l.RateEUR, l.RateGBP); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Variants prints each rule variant with the outcomes it can produce.
func (p *Printer) Variants(vs []deferral.Variant) error {
	if p.json {
		return p.encode(vs)
	}
	for _, v := range vs {
		if _, err := p.header.Fprintln(p.w, v.Name); err != nil {
			return err
		}
		for _, l := range v.Labels {
			if _, err := fmt.Fprintf(p.w, "  %s\n", p.labelColor(l).Sprint(l.Text)); err != nil {
				return err
			}
		}
	}
	return nil
}
