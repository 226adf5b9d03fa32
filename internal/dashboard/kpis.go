package dashboard

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/models"
)

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

var neutralMultiplier = catalog.Multiplier{Revenue: 1, Volume: 1, OTIF: 1}

// KPIs returns the eight dashboard KPIs in fixed order. Only revenue, volume and
// OTIF are scaled by the region; plant, sku and supplier do not affect KPIs.
func (e *Engine) KPIs(sel models.FilterSelection) []models.KPIRecord {
	base := e.catalog.KPIBase[models.AllProducts]
	row := catalog.LookupOr(e.catalog.KPIBase, sel.Product, base)
	mult := catalog.LookupOr(e.catalog.Multipliers, sel.Region, neutralMultiplier)

	out := make([]models.KPIRecord, 0, len(models.KPIOrder))
	for _, key := range models.KPIOrder {
		rec := row[key]
		switch key {
		case models.KPIRevenue:
			rec.Value = scaleFormatted(rec.Value, mult.Revenue, 0)
		case models.KPIVolume:
			rec.Value = scaleFormatted(rec.Value, mult.Volume, 0)
		case models.KPIOTIF:
			rec.Value = scaleFormatted(rec.Value, mult.OTIF, 100)
		}
		out = append(out, rec)
	}
	return out
}

// scaleFormatted multiplies the first number embedded in a formatted value and
// re-renders it with the original prefix, suffix and decimal precision.
// A positive limit caps the scaled number. Values with no number pass through.
func scaleFormatted(value string, factor, limit float64) string {
	loc := numberPattern.FindStringIndex(value)
	if loc == nil {
		return value
	}

	raw := value[loc[0]:loc[1]]
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return value
	}

	decimals := 0
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		decimals = len(raw) - i - 1
	}

	scaled := n * factor
	if limit > 0 && scaled > limit {
		scaled = limit
	}

	return value[:loc[0]] + strconv.FormatFloat(scaled, 'f', decimals, 64) + value[loc[1]:]
}
