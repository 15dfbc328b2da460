package clean

import (
	"regexp"
	"strconv"
	"strings"
)

// Amount is a parsed numeric value. Valid is false when no number could be
// recovered; that is a normal outcome, not an error.
type Amount struct {
	Value float64
	Valid bool
}

func amount(v float64) Amount { return Amount{Value: v, Valid: true} }

// Salary is the structured form of a salary expression. When at least one of
// the three is derivable the others are back-filled so the record is never
// internally inconsistent.
type Salary struct {
	Min, Max, Mean Amount
}

var (
	salaryWordsRe = regexp.MustCompile(`(?i)\bper\s*year\b|\bper\s*annum\b|/yr\b|\byr\b|\bannually\b`)
	salaryKeepRe  = regexp.MustCompile(`[^\d.,kKmM\-+()]`)
	parenNumRe    = regexp.MustCompile(`^\([\d.,\skmKM]+\)$`)
	suffixNumRe   = regexp.MustCompile(`^([+-]?[\d.,]+)\s*([kKmM])$`)
	numTokenRe    = regexp.MustCompile(`[+-]?\d+(?:[.,]\d+)*[kKmM]?`)
	plainNumRe    = regexp.MustCompile(`[^\d.\-]`)
	digitRe       = regexp.MustCompile(`\d`)
	wrapRe        = regexp.MustCompile(`^[\[{'"]+|[\]}'"]+$`)
	rangeSepRe    = regexp.MustCompile(`\bto\b|[-–—]`)
)

var salarySentinels = map[string]bool{
	"na": true, "n/a": true, "none": true, "-": true, "—": true, "[]": true,
}

// ParseSalaryNumber parses one numeric expression: currency symbols,
// parenthesized negatives, k/M suffixes, thousands separators and European
// decimal commas. Strategies run in fixed order, first success wins.
func ParseSalaryNumber(s string) Amount {
	s0 := Text(s)
	if s0 == "" || salarySentinels[strings.ToLower(s0)] {
		return Amount{}
	}

	s1 := salaryWordsRe.ReplaceAllString(s0, "")
	s1 = salaryKeepRe.ReplaceAllString(s1, "")

	// "(60,000)" -> "-60,000" (accounting negative)
	if parenNumRe.MatchString(s1) {
		s1 = "-" + strings.TrimRight(strings.TrimLeft(strings.TrimSpace(s1), "("), ")")
	}

	// "50k", "1.2M"
	if m := suffixNumRe.FindStringSubmatch(strings.TrimSpace(s1)); m != nil {
		num := strings.ReplaceAll(strings.ReplaceAll(m[1], ",", ""), " ", "")
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Amount{}
		}
		if strings.EqualFold(m[2], "k") {
			return amount(v * 1_000)
		}
		return amount(v * 1_000_000)
	}

	// European signature: comma after the last period means the periods are
	// thousands separators and the comma is the decimal point. Such strings
	// must not go through the plain strip, it would misread "50.000,00" as 50.
	euro := strings.Contains(s1, ".") && strings.Contains(s1, ",") &&
		strings.LastIndex(s1, ",") > strings.LastIndex(s1, ".")

	// plain number, commas and spaces as thousands separators
	if !euro {
		a := strings.NewReplacer(" ", "", ",", "").Replace(s1)
		a = plainNumRe.ReplaceAllString(a, "")
		if digitRe.MatchString(a) {
			if v, err := strconv.ParseFloat(a, 64); err == nil {
				return amount(v)
			}
		}
	}

	if euro {
		b := strings.NewReplacer(".", "", ",", ".").Replace(s1)
		b = plainNumRe.ReplaceAllString(b, "")
		if v, err := strconv.ParseFloat(b, 64); err == nil {
			return amount(v)
		}
	}

	// last resort: first number-looking substring in the noise
	if tokens := numTokenRe.FindAllString(s1, -1); len(tokens) > 0 {
		t := tokens[0]
		if strings.Contains(t, ",") && !strings.Contains(t, ".") {
			t = strings.ReplaceAll(t, ",", ".")
		}
		t = strings.ReplaceAll(t, ",", "")
		if v, err := strconv.ParseFloat(t, 64); err == nil {
			return amount(v)
		}
		return Amount{}
	}

	return Amount{}
}

// ParseSalaryField parses a salary expression that may denote a range
// ("40k-60k", "50000 to 70000") or a serialized list. Total: unparseable
// input yields a record with all three fields invalid.
func ParseSalaryField(cell Cell) Salary {
	if cell.Null {
		return Salary{}
	}
	s := Text(cell.Value)
	if s == "" {
		return Salary{}
	}

	// bracket/quote wrapping from messy exports; parentheses are left alone
	// so accounting negatives survive to the number parser
	sc := strings.TrimSpace(wrapRe.ReplaceAllString(s, ""))

	if rangeSepRe.MatchString(sc) {
		var nums []float64
		for _, p := range rangeSepRe.Split(sc, -1) {
			if p = strings.TrimSpace(p); p == "" {
				continue
			}
			if a := ParseSalaryNumber(p); a.Valid {
				nums = append(nums, a.Value)
			}
		}
		return salaryFromNumbers(nums)
	}

	// serialized lists and other multi-number noise
	if tokens := numTokenRe.FindAllString(sc, -1); len(tokens) >= 2 {
		var nums []float64
		for _, t := range tokens {
			if a := ParseSalaryNumber(t); a.Valid {
				nums = append(nums, a.Value)
			}
		}
		if len(nums) >= 2 {
			return salaryFromNumbers(nums)
		}
	}

	if a := ParseSalaryNumber(sc); a.Valid {
		return Salary{Min: a, Max: a, Mean: a}
	}
	return Salary{}
}

func salaryFromNumbers(nums []float64) Salary {
	switch len(nums) {
	case 0:
		return Salary{}
	case 1:
		a := amount(nums[0])
		return Salary{Min: a, Max: a, Mean: a}
	}
	mn, mx := nums[0], nums[0]
	for _, v := range nums[1:] {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return Salary{Min: amount(mn), Max: amount(mx), Mean: amount((mn + mx) / 2)}
}
