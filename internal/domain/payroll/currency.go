package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter renders amounts for display. Never feed its output back into arithmetic.
type CurrencyFormatter struct {
	printer *message.Printer
	suffix  string
}

// NewCurrencyFormatter builds a formatter for a BCP 47 locale such as "vi-VN" or "id-ID".
// An unknown locale falls back to English grouping.
func NewCurrencyFormatter(locale, suffix string) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		suffix:  strings.TrimSpace(suffix),
	}
}

// Format renders the amount with locale thousands separators followed by the currency suffix.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	s := f.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(2)))
	if f.suffix == "" {
		return s
	}
	return s + " " + f.suffix
}

var defaultFormatter = NewCurrencyFormatter("vi-VN", "đ")

// FormatCurrency formats with the default Vietnamese locale and "đ" suffix.
func FormatCurrency(amount decimal.Decimal) string {
	return defaultFormatter.Format(amount)
}
