package dataset

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches the first numeral run in a free-text money field,
// allowing thousands separators ("$45,000 +", "50000-75000").
var amountPattern = regexp.MustCompile(`\d[\d,]*`)

// nonMoneyChars strips everything that is not a digit or decimal point.
var nonMoneyChars = regexp.MustCompile(`[^\d.]`)

// ParseAmount extracts the first numeral run from a free-text money field
// and returns it as whole dollars. Returns false when the field contains no
// parsable numeral; the caller decides what that means (the capital clause
// excludes such rows while active).
func ParseAmount(s string) (int, bool) {
	match := amountPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatMoney renders a free-text money field as a dollar amount with
// thousands separators and no decimal places. Empty, unparseable, and
// exactly-zero values render as "N/A".
func FormatMoney(s string) string {
	num := nonMoneyChars.ReplaceAllString(s, "")
	if num == "" {
		return "N/A"
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || f == 0 {
		return "N/A"
	}
	return "$" + groupThousands(strconv.FormatInt(int64(f+0.5), 10))
}

// groupThousands inserts commas into a plain digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
