// Package format renders amounts as "<currency-symbol> <amount>".
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats amounts for one currency and locale.
type Formatter struct {
	symbol  string
	iso     string
	group   string
	decimal string
}

// New builds a Formatter. code is an ISO 4217 currency code. symbol, when
// non-empty, replaces the currency's narrow symbol. locale is a BCP 47 tag
// used for digit grouping and the decimal separator.
func New(code, symbol, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	if symbol == "" {
		symbol = fmt.Sprint(currency.NarrowSymbol(unit))
	}
	group, dec := separators(message.NewPrinter(tag))
	return &Formatter{
		symbol:  symbol,
		iso:     fmt.Sprint(currency.ISO(unit)),
		group:   group,
		decimal: dec,
	}, nil
}

// separators reads the locale's grouping and decimal symbols off a sample
// rendering of 1234.5. Amounts themselves never pass through float64.
func separators(p *message.Printer) (group, dec string) {
	sample := p.Sprint(number.Decimal(1234.5, number.Scale(1)))
	i := strings.Index(sample, "1")
	j := strings.Index(sample, "234")
	k := strings.LastIndex(sample, "5")
	if i < 0 || j <= i || k <= j+3 {
		return ",", "."
	}
	return sample[i+1 : j], sample[j+3 : k]
}

// Symbol returns the display symbol.
func (f *Formatter) Symbol() string { return f.symbol }

// Number formats d with exactly 2 decimals and locale grouping.
func (f *Formatter) Number(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	b.WriteString(f.decimal)
	b.WriteString(frac)
	return b.String()
}

// Amount formats d as "<symbol> <number>".
func (f *Formatter) Amount(d decimal.Decimal) string {
	return f.symbol + " " + f.Number(d)
}

// ASCIIAmount formats d with the ISO code instead of the symbol, for
// renderers whose fonts only cover ASCII.
func (f *Formatter) ASCIIAmount(d decimal.Decimal) string {
	return f.iso + " " + f.Number(d)
}
