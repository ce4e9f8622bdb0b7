package recipe

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// quantityPattern captures an optional leading quantity expression (a
// number, optionally followed by a simple or mixed fraction, optionally
// followed by a unit word) and the trailing free-text name.
var quantityPattern = regexp.MustCompile(`^(\d+(?:\s*\d*[/⁄]\d*)?\s*(?:[a-zA-Z]+)?)\s+(.+)$`)

// ParseQuantity splits an ingredient line into a name and a quantity.
// Grammar: [number [fraction] [unit-word]] name. If no quantity pattern
// matches, the whole line is the name and the quantity is empty. The
// literal quantity "none" is treated as absent.
func ParseQuantity(line string) (name, quantity string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", ""
	}
	lower := strings.ToLower(trimmed)
	if rest, ok := strings.CutPrefix(lower, "none "); ok {
		return strings.TrimSpace(rest), ""
	}
	m := quantityPattern.FindStringSubmatch(lower)
	if m == nil {
		return lower, ""
	}
	return strings.TrimSpace(m[2]), strings.TrimSpace(m[1])
}

// ParseAmount extracts the numeric value from a quantity string like "2",
// "1/2", "1 1/2" or "0.5", returning the value, any trailing unit text and
// whether parsing succeeded.
func ParseAmount(quantity string) (value float64, unit string, ok bool) {
	fields := strings.Fields(strings.TrimSpace(quantity))
	if len(fields) == 0 {
		return 0, "", false
	}

	// Mixed fraction: "1 1/2 cups".
	if len(fields) >= 2 && isFraction(fields[1]) {
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, "", false
		}
		frac, err := fractionValue(fields[1])
		if err != nil {
			return 0, "", false
		}
		return whole + frac, strings.Join(fields[2:], " "), true
	}

	// Simple fraction: "1/2 cup".
	if isFraction(fields[0]) {
		frac, err := fractionValue(fields[0])
		if err != nil {
			return 0, "", false
		}
		return frac, strings.Join(fields[1:], " "), true
	}

	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, "", false
	}
	return v, strings.Join(fields[1:], " "), true
}

func isFraction(s string) bool {
	return strings.ContainsAny(s, "/⁄")
}

func fractionValue(s string) (float64, error) {
	s = strings.ReplaceAll(s, "⁄", "/")
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("not a fraction: %q", s)
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, err
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, fmt.Errorf("zero denominator: %q", s)
	}
	return num / den, nil
}

// niceFractions are the fractional parts worth rendering as fractions
// instead of decimals.
var niceFractions = []struct {
	value float64
	text  string
}{
	{0.25, "1/4"},
	{1.0 / 3.0, "1/3"},
	{0.5, "1/2"},
	{2.0 / 3.0, "2/3"},
	{0.75, "3/4"},
}

// FormatAmount renders a numeric amount in cooking style: whole numbers
// plain, common fractions as fractions ("1 1/2"), everything else as a
// short decimal.
func FormatAmount(v float64) string {
	if v <= 0 {
		return "0"
	}
	whole := math.Floor(v)
	frac := v - whole

	if frac < 0.05 {
		return strconv.Itoa(int(whole))
	}
	for _, nf := range niceFractions {
		if math.Abs(frac-nf.value) < 0.05 {
			if whole == 0 {
				return nf.text
			}
			return fmt.Sprintf("%d %s", int(whole), nf.text)
		}
	}
	if frac > 0.95 {
		return strconv.Itoa(int(whole) + 1)
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// ScaleQuantity multiplies the leading numeric amount of a quantity string
// by ratio, preserving any unit text. Returns the input unchanged with
// ok=false when no amount can be parsed.
func ScaleQuantity(quantity string, ratio float64) (string, bool) {
	value, unit, ok := ParseAmount(quantity)
	if !ok {
		return quantity, false
	}
	scaled := FormatAmount(value * ratio)
	if unit == "" {
		return scaled, true
	}
	return scaled + " " + unit, true
}
