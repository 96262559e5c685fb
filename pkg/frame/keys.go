package frame

import (
	"strings"
	"unicode"
)

// KeyMode selects how field names are converted to snake case.
type KeyMode int

const (
	// KeyModeDefault treats runs of uppercase letters as acronyms.
	KeyModeDefault KeyMode = iota
	// KeyModeTTM additionally folds the literal "TTM" into a single "_ttm" token.
	KeyModeTTM
)

// filingDateTypo is the misspelled column some FMP endpoints return.
const (
	filingDateTypo = "filling_date"
	filingDate     = "filing_date"
)

// SnakeCase converts an FMP field name such as "marketCap" or "ebitdaRatio"
// to snake case. A run of two or more uppercase letters emits an underscore
// followed by the run minus its last letter, which then starts the next word.
// Names that are already snake case are returned unchanged.
func SnakeCase(name string) string {
	return convert(name, KeyModeDefault)
}

// SnakeCaseTTM is SnakeCase with "TTM" rendered as "_ttm".
//
//	peRatioTTM → pe_ratio_ttm
func SnakeCaseTTM(name string) string {
	return convert(name, KeyModeTTM)
}

// Convert applies the given key mode to name.
func (m KeyMode) Convert(name string) string {
	return convert(name, m)
}

func convert(name string, mode KeyMode) string {
	rs := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i := 0; i < len(rs); {
		r := rs[i]
		if mode == KeyModeTTM && isTTM(rs, i) {
			b.WriteString("_ttm")
			i += 3
			continue
		}
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			i++
			continue
		}

		j := i + 1
		for j < len(rs) && unicode.IsUpper(rs[j]) {
			if mode == KeyModeTTM && isTTM(rs, j) {
				break
			}
			j++
		}

		if j-i > 1 {
			b.WriteByte('_')
			for _, u := range rs[i : j-1] {
				b.WriteRune(unicode.ToLower(u))
			}
			i = j - 1
			continue
		}

		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
		i++
	}
	return b.String()
}

func isTTM(rs []rune, i int) bool {
	return i+2 < len(rs) && rs[i] == 'T' && rs[i+1] == 'T' && rs[i+2] == 'M'
}

// normalizeColumn converts name and fixes the upstream filing date typo.
func normalizeColumn(name string, mode KeyMode) string {
	out := mode.Convert(name)
	if out == filingDateTypo {
		return filingDate
	}
	return out
}

// SnakeKeys returns a copy of rec with every key converted using mode.
func SnakeKeys(rec Record, mode KeyMode) Record {
	out := make(Record, len(rec))
	for i, f := range rec {
		out[i] = Field{Key: normalizeColumn(f.Key, mode), Value: f.Value}
	}
	return out
}
