package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	minYear = 1900
	maxYear = 2100
)

var (
	// "2023-24" or "2023–24" (en dash). Academic cycles canonicalize to the
	// ending year.
	yearRangeRe = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{2,4})`)
	// "AY 2023/24" or "2023/24".
	yearSlashRe = regexp.MustCompile(`(?i)(?:AY|Academic\s+Year)?\s*(\d{4})\s*/\s*(\d{2,4})`)
	fullYearRe  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	shortYearRe = regexp.MustCompile(`\b(\d{2})\b`)
)

// ParseYear canonicalizes a raw year value. Ranges resolve to the ending year
// of the academic cycle: "2023-24" -> 2024, "AY 2023/24" -> 2024. Returns nil
// for anything that does not resolve to a year in [1900,2100].
func ParseYear(value any) *int {
	switch v := value.(type) {
	case nil:
		return nil
	case int:
		return intYear(v)
	case int64:
		return intYear(int(v))
	case float64:
		return intYear(int(v))
	case string:
		return parseYearString(v)
	default:
		return nil
	}
}

// ParseYearRange parses only explicit academic-year ranges ("2023-24",
// "AY 2023/24"), returning the ending year. Unlike ParseYear it never
// interprets a bare number as a year, which makes it safe to run over
// arbitrary raw fields when backfilling a missing year.
func ParseYearRange(value any) *int {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return nil
	}
	if m := yearRangeRe.FindStringSubmatch(cleaned); m != nil {
		return rangeEnd(m[1], m[2])
	}
	if m := yearSlashRe.FindStringSubmatch(cleaned); m != nil {
		return rangeEnd(m[1], m[2])
	}
	return nil
}

func parseYearString(raw string) *int {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil
	}

	if y := ParseYearRange(cleaned); y != nil {
		return y
	}
	if m := fullYearRe.FindString(cleaned); m != "" {
		y, _ := strconv.Atoi(m)
		return intYear(y)
	}
	if m := shortYearRe.FindStringSubmatch(cleaned); m != nil {
		y, _ := strconv.Atoi(m[1])
		return intYear(expandShortYear(y))
	}
	return nil
}

func rangeEnd(startStr, endStr string) *int {
	start, err := strconv.Atoi(startStr)
	if err != nil {
		return nil
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return nil
	}
	if len(endStr) == 2 {
		end = expandShortYear(end)
	}
	if end > start {
		return intYear(end)
	}
	return intYear(start)
}

func expandShortYear(y int) int {
	if y < 50 {
		return 2000 + y
	}
	return 1900 + y
}

func intYear(y int) *int {
	if y < minYear || y > maxYear {
		return nil
	}
	return &y
}
