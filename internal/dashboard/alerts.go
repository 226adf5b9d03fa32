package dashboard

import (
	"slices"
	"strings"

	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/models"
)

// Alerts narrows the alert catalog by region, then product, then plant, keeping
// catalog order. SKU and supplier are accepted but do not narrow the result.
func (e *Engine) Alerts(sel models.FilterSelection) []models.Alert {
	out := make([]models.Alert, 0, len(e.catalog.Alerts))
	for _, a := range e.catalog.Alerts {
		if !e.matchesRegion(a, sel.Region) {
			continue
		}
		if !e.matchesProduct(a, sel.Product) {
			continue
		}
		if !e.matchesPlant(a, sel.Plant) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AlertDetail returns an alert together with its recommended actions
func (e *Engine) AlertDetail(id string) (models.AlertDetail, bool) {
	a, ok := e.catalog.AlertByID(id)
	if !ok {
		return models.AlertDetail{}, false
	}
	return models.AlertDetail{
		Alert:   a,
		Actions: e.catalog.ActionsFor(id),
	}, true
}

func (e *Engine) matchesRegion(a models.Alert, region string) bool {
	if region == models.AllRegions || region == "" {
		return true
	}
	if a.Region == region {
		return true
	}
	return slices.Contains(e.catalog.MacroRegion[region], a.Region)
}

func (e *Engine) matchesProduct(a models.Alert, product string) bool {
	if product == models.AllProducts || product == "" {
		return true
	}
	if slices.Contains(e.catalog.ProductAlerts[product], a.ID) {
		return true
	}

	keywords := catalog.LookupOr(e.catalog.ProductKeywords, product, []string{productLabel(product)})
	title := strings.ToLower(a.Title)
	for _, kw := range keywords {
		if strings.Contains(title, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func (e *Engine) matchesPlant(a models.Alert, plant string) bool {
	if plant == models.AllPlants || plant == "" {
		return true
	}

	needle := productLabel(plant)
	p, ok := e.catalog.PlantByName(plant)
	if ok {
		if a.Region == p.Region {
			return true
		}
		needle = p.City
	}

	needle = strings.ToLower(needle)
	return strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Description), needle)
}
