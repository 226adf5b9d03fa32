// Package dashboard derives the command-center view models from a FilterSelection.
//
// Every function here is total over its inputs: unknown products, regions or
// combinations degrade to a documented fallback instead of an error.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/models"
)

// Engine derives option lists, KPIs, alerts and insights from a catalog
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a new derivation engine over the given catalog
func NewEngine(c *catalog.Catalog) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	return &Engine{catalog: c}
}

// Catalog returns the catalog the engine reads from
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Plants returns the plant options for a product/region pair, sentinel first
func (e *Engine) Plants(product, region string) []string {
	return e.dependentOptions(product, region, models.AllPlants, e.catalog.PlantNames(), func(s catalog.Scope) []string {
		return s.Plants
	})
}

// SKUs returns the SKU options for a product/region pair, sentinel first
func (e *Engine) SKUs(product, region string) []string {
	return e.dependentOptions(product, region, models.AllSKUs, e.catalog.SKUs, func(s catalog.Scope) []string {
		return s.SKUs
	})
}

// Suppliers returns the supplier options for a product/region pair, sentinel first
func (e *Engine) Suppliers(product, region string) []string {
	return e.dependentOptions(product, region, models.AllSuppliers, e.catalog.Suppliers, func(s catalog.Scope) []string {
		return s.Suppliers
	})
}

// Options returns all three dependent option lists
func (e *Engine) Options(product, region string) models.FilterOptions {
	return models.FilterOptions{
		Plants:    e.Plants(product, region),
		SKUs:      e.SKUs(product, region),
		Suppliers: e.Suppliers(product, region),
	}
}

func (e *Engine) dependentOptions(
	product, region, sentinel string,
	union []string,
	pick func(catalog.Scope) []string,
) []string {
	if product == models.AllProducts || region == models.AllRegions {
		return withSentinel(sentinel, union)
	}

	// Absent combinations yield the sentinel alone
	byRegion := catalog.LookupOr(e.catalog.Hierarchy, product, nil)
	scope := catalog.LookupOr(byRegion, region, catalog.Scope{})
	return withSentinel(sentinel, pick(scope))
}

func withSentinel(sentinel string, values []string) []string {
	out := make([]string, 0, len(values)+1)
	out = append(out, sentinel)
	return append(out, values...)
}

// Insights returns the insight bundle for the selected product. A specific region
// only prefixes the summary with its name.
func (e *Engine) Insights(sel models.FilterSelection) models.AIInsight {
	base := e.catalog.Insights[models.AllProducts]
	insight := catalog.LookupOr(e.catalog.Insights, sel.Product, base)

	insight.KeyFindings = append([]string(nil), insight.KeyFindings...)
	insight.Recommendations = append([]string(nil), insight.Recommendations...)

	if sel.Region != models.AllRegions && sel.Region != "" {
		insight.Summary = fmt.Sprintf("%s: %s", sel.Region, insight.Summary)
	}
	return insight
}

// View derives the full dashboard for a selection
func (e *Engine) View(sel models.FilterSelection) models.DashboardView {
	return models.DashboardView{
		Filters:  sel,
		Options:  e.Options(sel.Product, sel.Region),
		KPIs:     e.KPIs(sel),
		Alerts:   e.Alerts(sel),
		Insights: e.Insights(sel),
	}
}

// productLabel strips the HSN suffix, e.g. "Motor Oil (2710.19)" -> "Motor Oil"
func productLabel(product string) string {
	if i := strings.Index(product, " ("); i > 0 {
		return product[:i]
	}
	return product
}
