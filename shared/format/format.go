package format

import (
	"fmt"
	"salondash/config"
	"salondash/shared/constant"
	"salondash/shared/timezone"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	displayDateLayout = "Mon, Jan 2, 2006"
	displayTimeLayout = "3:04 PM"
)

// Formatter renders dates, times and money for one locale and currency.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

func New(locale, currencyCode string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Warn().Err(err).Str("locale", locale).Msg("unknown locale, falling back to en-US")
		tag = language.AmericanEnglish
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		log.Warn().Err(err).Str("currency", currencyCode).Msg("unknown currency, falling back to USD")
		unit = currency.USD
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// FromConfig builds a Formatter from the App locale settings.
func FromConfig(cfg *config.Config) *Formatter {
	return New(cfg.App.Locale, cfg.App.Currency)
}

// Money formats amount with the narrow currency symbol and two decimals, e.g. "$1,234.50".
func (f *Formatter) Money(amount float64) string {
	symbol := f.printer.Sprint(currency.NarrowSymbol(f.unit))

	return symbol + f.Number(amount)
}

// MoneyString formats a decimal string such as "125.50". Unparseable input is returned as is.
func (f *Formatter) MoneyString(amount string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return amount
	}

	return f.Money(v)
}

// Number formats v with locale grouping and two decimals.
func (f *Formatter) Number(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(2)))
}

// Date renders a YYYY-MM-DD date for display. Unparseable input is returned as is.
func (f *Formatter) Date(value string) string {
	t, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		if t, err = timezone.Parse(constant.DateFormat, value); err != nil {
			return value
		}
	}

	return timezone.Format(t, displayDateLayout)
}

// Clock renders an HH:MM[:SS] time for display. Unparseable input is returned as is.
func (f *Formatter) Clock(value string) string {
	for _, layout := range []string{constant.ClockFormat, constant.ClockFormatSec} {
		if t, err := timezone.Parse(layout, value); err == nil {
			return t.Format(displayTimeLayout)
		}
	}

	return value
}

// Duration renders minutes as "45 min", "1h" or "1h 30m".
func Duration(minutes int) string {
	switch {
	case minutes <= 0:
		return "-"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	case minutes%60 == 0:
		return fmt.Sprintf("%dh", minutes/60)
	default:
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
}
