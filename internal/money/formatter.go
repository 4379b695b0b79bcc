// Package money renders integer minor-unit amounts for display.
package money

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultCurrency = "KES"
	DefaultLocale   = "en-KE"
)

// Formatter renders amounts in a fixed currency and locale. It never changes
// stored values.
type Formatter struct {
	unit    currency.Unit
	scale   int
	verb    string
	symbol  string
	printer *message.Printer
}

func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	printer := message.NewPrinter(tag)
	scale, _ := currency.Standard.Rounding(unit)
	return &Formatter{
		unit:    unit,
		scale:   scale,
		verb:    fmt.Sprintf("%%.%df", scale),
		symbol:  printer.Sprint(currency.Symbol(unit)),
		printer: printer,
	}, nil
}

// Default formats Kenyan shillings for the en-KE locale.
func Default() *Formatter {
	f, err := NewFormatter(DefaultCurrency, DefaultLocale)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders an amount in minor units at the currency's own scale,
// e.g. 1500000 -> "Ksh 15,000.00" for KES and 123456 -> "￥ 123,456" for JPY.
func (f *Formatter) Format(minor int64) string {
	return f.symbol + " " + f.printer.Sprintf(f.verb, float64(minor)/math.Pow10(f.scale))
}

func (f *Formatter) Currency() string {
	return f.unit.String()
}
