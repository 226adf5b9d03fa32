// Package catalog holds the compiled-in reference data behind the command center:
// the product/region hierarchy, KPI base rows, region multipliers, the alert catalog
// with its recommended actions, insight bundles and the grocery pantry.
package catalog

import "github.com/davidmoltin/command-center/internal/models"

// Scope lists the dependent facet values valid for one product/region pair
type Scope struct {
	Plants    []string
	SKUs      []string
	Suppliers []string
}

// Multiplier scales the additive KPIs for a region
type Multiplier struct {
	Revenue float64
	Volume  float64
	OTIF    float64
}

// Plant is a production site and the alert region it reports into
type Plant struct {
	Name   string
	City   string
	Region string
}

// Catalog is a read-only set of lookup tables
type Catalog struct {
	Products    []string
	Regions     []string
	Plants      []Plant
	SKUs        []string
	Suppliers   []string
	Hierarchy   map[string]map[string]Scope
	MacroRegion map[string][]string

	KPIBase     map[string]map[string]models.KPIRecord
	Multipliers map[string]Multiplier

	Alerts          []models.Alert
	Actions         map[string][]models.RecommendedAction
	ProductKeywords map[string][]string
	ProductAlerts   map[string][]string

	Insights map[string]models.AIInsight

	Pantry []models.InventoryItem
}

// LookupOr returns table[key], or fallback when the key is absent
func LookupOr[K comparable, V any](table map[K]V, key K, fallback V) V {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

var defaultCatalog = &Catalog{
	Products:        products,
	Regions:         regions,
	Plants:          plants,
	SKUs:            skus,
	Suppliers:       suppliers,
	Hierarchy:       hierarchy,
	MacroRegion:     macroRegions,
	KPIBase:         kpiBase,
	Multipliers:     regionMultipliers,
	Alerts:          alerts,
	Actions:         recommendedActions,
	ProductKeywords: productKeywords,
	ProductAlerts:   productAlerts,
	Insights:        insights,
	Pantry:          pantry,
}

// Default returns the compiled-in catalog shared by the whole process
func Default() *Catalog {
	return defaultCatalog
}

// PlantNames returns plant names in catalog order
func (c *Catalog) PlantNames() []string {
	names := make([]string, 0, len(c.Plants))
	for _, p := range c.Plants {
		names = append(names, p.Name)
	}
	return names
}

// PlantByName finds a plant by its display name
func (c *Catalog) PlantByName(name string) (Plant, bool) {
	for _, p := range c.Plants {
		if p.Name == name {
			return p, true
		}
	}
	return Plant{}, false
}

// AlertByID finds an alert in the catalog
func (c *Catalog) AlertByID(id string) (models.Alert, bool) {
	for _, a := range c.Alerts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Alert{}, false
}

// ActionsFor returns the recommended actions defined for an alert
func (c *Catalog) ActionsFor(alertID string) []models.RecommendedAction {
	actions := c.Actions[alertID]
	out := make([]models.RecommendedAction, len(actions))
	copy(out, actions)
	return out
}

// ActionsByID resolves action ids for an alert, keeping the requested order.
// Unknown ids are skipped.
func (c *Catalog) ActionsByID(alertID string, ids []string) []models.RecommendedAction {
	byID := make(map[string]models.RecommendedAction, len(c.Actions[alertID]))
	for _, a := range c.Actions[alertID] {
		byID[a.ID] = a
	}

	out := make([]models.RecommendedAction, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}
