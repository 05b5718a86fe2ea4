package callnum

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxSuffixLen is the maximum number of script runes kept in a suffix.
const MaxSuffixLen = 3

// CallNumber is the canonical, comparable form of a classification call number.
// Key is a fixed-point integer with 3 implied fractional digits: the textual
// forms "370.113" and "370113" both canonicalize to Key 370113. Suffix is a
// short Thai-script refinement used only for ordering at range boundaries;
// an absent suffix is the empty string.
type CallNumber struct {
	Key    int64
	Suffix string
}

// String returns the display form of the call number, e.g. "370.113พ".
func (c CallNumber) String() string {
	whole := c.Key / 1000
	frac := c.Key % 1000
	if frac == 0 {
		return strconv.FormatInt(whole, 10) + c.Suffix
	}
	s := strconv.FormatInt(whole, 10) + "." + pad3(frac)
	s = strings.TrimRight(s, "0")
	return s + c.Suffix
}

func pad3(n int64) string {
	s := strconv.FormatInt(n, 10)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// callNumberRE matches a numeric body followed by up to three trailing
// suffix runes. Anchored at the end so the suffix must be the trailing token
// of the query. The suffix capture is deliberately loose; CleanSuffix drops
// anything outside the Thai script afterwards.
var callNumberRE = regexp.MustCompile(`([0-9.]+)\s*([^\s0-9]{0,3})$`)

// Parse canonicalizes a raw call-number string.
//
// Dash variants (en dash, em dash) are normalized to plain hyphens first so
// range-separator handling stays uniform for callers that split combined
// "start-end" text. The numeric body is converted to a fixed-point Key with
// exact integer arithmetic:
//
//   - a dotted form keeps its integer part and rounds the fraction to
//     thousandths ("370.1" -> 370100);
//   - an undotted run of 3 or fewer digits is the integer portion only
//     ("370" -> 370000);
//   - an undotted run of more than 3 digits gets an implied dot after the
//     first 3 digits ("370113" -> 370113).
//
// The second return value is false when raw contains no parseable numeric
// body; that is the signal to fall back to text search, not an error.
func Parse(raw string) (CallNumber, bool) {
	s := NormalizeDashes(strings.TrimSpace(raw))
	if s == "" {
		return CallNumber{}, false
	}

	m := callNumberRE.FindStringSubmatch(s)
	if m == nil {
		return CallNumber{}, false
	}

	key, ok := keyFromNumeric(m[1])
	if !ok {
		return CallNumber{}, false
	}

	return CallNumber{Key: key, Suffix: CleanSuffix(m[2])}, true
}

// KeyFromDecimal converts a plain decimal string to a fixed-point Key.
// Unlike Parse, no implied decimal point is inserted: "1500" means the
// classification code 1500, not 1.500. This is the coercion used for source
// schemas that supply separate numeric boundary columns.
func KeyFromDecimal(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return keyFromParts(s, "")
	}
	return keyFromParts(s[:dot], s[dot+1:])
}

// CleanSuffix keeps only Thai-script runes, at most MaxSuffixLen of them.
// Hyphens, punctuation and stray ASCII are dropped; a value with no script
// runes degrades to the empty suffix.
func CleanSuffix(s string) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		if !isThai(r) {
			continue
		}
		b.WriteRune(r)
		n++
		if n == MaxSuffixLen {
			break
		}
	}
	return b.String()
}

// NormalizeDashes replaces en-dash and em-dash runes with plain hyphens.
func NormalizeDashes(s string) string {
	return strings.NewReplacer("–", "-", "—", "-").Replace(s)
}

func isThai(r rune) bool {
	return r >= 'ก' && r <= '๙'
}

// keyFromNumeric applies the call-number canonicalization rules to the
// numeric body matched by callNumberRE.
func keyFromNumeric(num string) (int64, bool) {
	dot := strings.IndexByte(num, '.')
	if dot < 0 {
		if len(num) <= 3 {
			return keyFromParts(num, "")
		}
		// Implied decimal point after the first 3 digits.
		return keyFromParts(num[:3], num[3:])
	}
	return keyFromParts(num[:dot], num[dot+1:])
}

// keyFromParts builds whole*1000 + thousandths from decimal digit strings,
// rounding the fraction half-up at the fourth digit. Integer arithmetic only;
// no float conversion anywhere on this path.
func keyFromParts(whole, frac string) (int64, bool) {
	if whole == "" && frac == "" {
		return 0, false
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, false
	}
	if len(whole) > 15 {
		return 0, false
	}

	var key int64
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, false
		}
		key = n * 1000
	}

	mult := int64(100)
	for i := 0; i < len(frac) && i < 3; i++ {
		key += int64(frac[i]-'0') * mult
		mult /= 10
	}
	if len(frac) > 3 && frac[3] >= '5' {
		key++
	}
	return key, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
