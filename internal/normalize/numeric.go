package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit conversion factors. Area values are canonicalized to square meters.
const (
	SqftToSqmFactor    = 0.092903
	AcreToSqmFactor    = 4046.86
	HectareToSqmFactor = 10000.0

	lakhFactor  = 100_000.0
	croreFactor = 10_000_000.0
)

var (
	percentRe = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*%`)
	lpaRe     = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:LPA|L\.P\.A\.)`)
	lakhRe    = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:lakh|lakhs|L)\b`)
	croreRe   = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:crore|crores|Cr)\b`)

	currencyRes = []*regexp.Regexp{
		regexp.MustCompile(`₹\s*(\d+[,\d]*\.?\d*)`),
		regexp.MustCompile(`(?i)Rs\.?\s*(\d+[,\d]*\.?\d*)`),
		regexp.MustCompile(`(?i)INR\s*(\d+[,\d]*\.?\d*)`),
	}

	areaSqmRe     = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?)\s*(?:sq\.?\s*m\b|sqm\b|square\s*(?:meter|metre|m)\b)`)
	areaSqftRe    = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?)\s*(?:sq\.?\s*ft\b|sqft\b|square\s*(?:feet|ft)\b)`)
	areaAcreRe    = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:acre|acres|ac\.)`)
	areaHectareRe = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:hectare|hectares|ha\.)`)

	fillerWordsRe = regexp.MustCompile(`(?i)\b(students|student|FTE|area|count|number|total|per|each)\b`)
	numberRe      = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?`)
)

// ParseNumeric extracts a canonical numeric value from a messy raw field.
//
// It handles currency symbols (₹, Rs., INR) and thousands separators, the
// Indian short scale ("1.2 Lakh" = 120000, "5 Cr" = 50000000), percentage
// signs ("84.7%" = 84.7), LPA salary figures kept in LPA, and area units
// canonicalized to square meters (sq.ft x 0.092903, acres, hectares). When
// nothing matches, the first free-standing number is used.
//
// Parsing failure yields nil, never an error: a field the extraction service
// mangled is missing data, not a reason to abort the pass.
func ParseNumeric(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return ptr(v)
	case float32:
		return ptr(float64(v))
	case int:
		return ptr(float64(v))
	case int64:
		return ptr(float64(v))
	case bool:
		if v {
			return ptr(1)
		}
		return ptr(0)
	case string:
		return parseNumericString(v)
	default:
		return nil
	}
}

func parseNumericString(raw string) *float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil
	}

	if m := percentRe.FindStringSubmatch(cleaned); m != nil {
		return parseFloat(m[1])
	}
	if m := lpaRe.FindStringSubmatch(cleaned); m != nil {
		return parseFloat(m[1])
	}
	if m := lakhRe.FindStringSubmatch(cleaned); m != nil {
		return scale(parseFloat(m[1]), lakhFactor)
	}
	if m := croreRe.FindStringSubmatch(cleaned); m != nil {
		return scale(parseFloat(m[1]), croreFactor)
	}
	for _, re := range currencyRes {
		if m := re.FindStringSubmatch(cleaned); m != nil {
			return parseFloat(m[1])
		}
	}
	if m := areaSqmRe.FindStringSubmatch(cleaned); m != nil {
		return parseFloat(m[1])
	}
	if m := areaSqftRe.FindStringSubmatch(cleaned); m != nil {
		return scale(parseFloat(m[1]), SqftToSqmFactor)
	}
	if m := areaAcreRe.FindStringSubmatch(cleaned); m != nil {
		return scale(parseFloat(m[1]), AcreToSqmFactor)
	}
	if m := areaHectareRe.FindStringSubmatch(cleaned); m != nil {
		return scale(parseFloat(m[1]), HectareToSqmFactor)
	}

	// Strip filler words so "1290 students" parses as 1290.
	stripped := fillerWordsRe.ReplaceAllString(cleaned, "")
	if m := numberRe.FindString(stripped); m != "" {
		return parseFloat(m)
	}
	if m := numberRe.FindString(cleaned); m != "" {
		return parseFloat(m)
	}
	return nil
}

// SqftToSqm converts square feet to square meters.
func SqftToSqm(sqft float64) float64 { return sqft * SqftToSqmFactor }

// SqmToSqft converts square meters back to square feet.
func SqmToSqft(sqm float64) float64 { return sqm / SqftToSqmFactor }

func parseFloat(s string) *float64 {
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return ptr(f)
}

func scale(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(*v * factor)
}

func ptr(v float64) *float64 { return &v }
