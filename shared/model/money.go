package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Money is a price as the backend sent it, number or string. Arithmetic goes through cents.
type Money string

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode money: %w", err)
		}

		*m = Money(strings.TrimSpace(s))

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode money: %w", err)
	}

	*m = Money(n.String())

	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	if m == "" {
		return []byte("null"), nil
	}

	return json.Marshal(string(m))
}

// Cents parses m into whole cents, rounding half away from zero past the second decimal.
func (m Money) Cents() (int64, bool) {
	s := strings.TrimSpace(string(m))
	if s == "" {
		return 0, false
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "+-")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, false
	}

	frac += "000"
	for _, r := range frac {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	cents, _ := strconv.ParseInt(frac[:2], 10, 64)
	if frac[2] >= '5' {
		cents++
	}

	total := units*100 + cents
	if negative {
		total = -total
	}

	return total, true
}

// Float returns m as a float for display; unparseable values are zero.
func (m Money) Float() float64 {
	cents, ok := m.Cents()
	if !ok {
		return 0
	}

	return float64(cents) / 100
}

// MoneyFromCents formats cents with exactly two decimals, e.g. 12550 -> "125.50".
func MoneyFromCents(cents int64) Money {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return Money(fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100))
}

// Sum adds amounts; a missing or malformed part counts as zero.
func Sum(parts ...Money) Money {
	var total int64
	for _, p := range parts {
		if cents, ok := p.Cents(); ok {
			total += cents
		}
	}

	return MoneyFromCents(total)
}

// MoneyFromAny reads an amount out of a decoded JSON value: a string, a float64 or a json.Number.
func MoneyFromAny(v any) (Money, bool) {
	var m Money

	switch val := v.(type) {
	case Money:
		m = val
	case string:
		m = Money(strings.TrimSpace(val))
	case float64:
		m = Money(strconv.FormatFloat(val, 'f', -1, 64))
	case int:
		m = Money(strconv.Itoa(val))
	case json.Number:
		m = Money(val.String())
	default:
		return "", false
	}

	if _, ok := m.Cents(); !ok {
		return "", false
	}

	return m, true
}
