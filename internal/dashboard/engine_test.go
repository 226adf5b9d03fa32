package dashboard

import (
	"testing"

	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selection(product, region string) models.FilterSelection {
	sel := models.DefaultFilterSelection()
	sel = sel.Set(models.FacetProduct, product)
	return sel.Set(models.FacetRegion, region)
}

func alertIDs(alerts []models.Alert) []string {
	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestDependentOptionsSentinelFirst(t *testing.T) {
	e := NewEngine(nil)
	c := e.Catalog()

	for _, product := range append(c.Products, "Unknown Product") {
		for _, region := range append(c.Regions, "Antarctica") {
			plants := e.Plants(product, region)
			skus := e.SKUs(product, region)
			suppliers := e.Suppliers(product, region)

			require.NotEmpty(t, plants)
			require.NotEmpty(t, skus)
			require.NotEmpty(t, suppliers)
			assert.Equal(t, models.AllPlants, plants[0], "%s/%s", product, region)
			assert.Equal(t, models.AllSKUs, skus[0], "%s/%s", product, region)
			assert.Equal(t, models.AllSuppliers, suppliers[0], "%s/%s", product, region)
		}
	}
}

func TestDependentOptions(t *testing.T) {
	e := NewEngine(nil)
	c := e.Catalog()

	tests := []struct {
		name      string
		product   string
		region    string
		plants    []string
		skus      []string
		suppliers []string
	}{
		{
			name:      "all products gives full union",
			product:   models.AllProducts,
			region:    catalog.RegionEMEA,
			plants:    append([]string{models.AllPlants}, c.PlantNames()...),
			skus:      append([]string{models.AllSKUs}, c.SKUs...),
			suppliers: append([]string{models.AllSuppliers}, c.Suppliers...),
		},
		{
			name:      "all regions gives full union",
			product:   catalog.ProductMotorOil,
			region:    models.AllRegions,
			plants:    append([]string{models.AllPlants}, c.PlantNames()...),
			skus:      append([]string{models.AllSKUs}, c.SKUs...),
			suppliers: append([]string{models.AllSuppliers}, c.Suppliers...),
		},
		{
			name:      "known combination",
			product:   catalog.ProductMotorOil,
			region:    catalog.RegionEMEA,
			plants:    []string{models.AllPlants, "Hamburg Blending Plant", "Barcelona Plant"},
			skus:      []string{models.AllSKUs, "MO-5W30-001", "MO-10W40-002"},
			suppliers: []string{models.AllSuppliers, "Shell Base Oils", "Infineum"},
		},
		{
			name:      "absent combination is sentinel only",
			product:   catalog.ProductMarineOil,
			region:    catalog.RegionIndia,
			plants:    []string{models.AllPlants},
			skus:      []string{models.AllSKUs},
			suppliers: []string{models.AllSuppliers},
		},
		{
			name:      "unknown product is sentinel only",
			product:   "Bitumen (2713.20)",
			region:    catalog.RegionEMEA,
			plants:    []string{models.AllPlants},
			skus:      []string{models.AllSKUs},
			suppliers: []string{models.AllSuppliers},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.plants, e.Plants(tt.product, tt.region))
			assert.Equal(t, tt.skus, e.SKUs(tt.product, tt.region))
			assert.Equal(t, tt.suppliers, e.Suppliers(tt.product, tt.region))
		})
	}
}

func TestKPIsOrderAndScaling(t *testing.T) {
	e := NewEngine(nil)

	kpis := e.KPIs(selection(catalog.ProductMotorOil, catalog.RegionEMEA))
	require.Len(t, kpis, 8)

	titles := make([]string, 0, len(kpis))
	for _, k := range kpis {
		titles = append(titles, k.Title)
	}
	assert.Equal(t, []string{
		"Revenue", "Volume", "OTIF %", "Inventory Cover",
		"Forecast Accuracy", "Inventory Health", "Risk Score", "Tariff Impact",
	}, titles)

	assert.Equal(t, "€343M", kpis[0].Value)
	assert.Equal(t, "132K", kpis[1].Value)
	assert.Equal(t, models.TrendUp, kpis[0].Trend)
	assert.Equal(t, "+5.6%", kpis[0].TrendValue)

	// Ratios and indices are never scaled by region
	base := e.KPIs(selection(catalog.ProductMotorOil, models.AllRegions))
	for i := 3; i < 8; i++ {
		assert.Equal(t, base[i], kpis[i], kpis[i].Title)
	}
}

func TestKPIsUnknownKeysFallBack(t *testing.T) {
	e := NewEngine(nil)

	all := e.KPIs(models.DefaultFilterSelection())

	unknownProduct := e.KPIs(selection("Bitumen (2713.20)", models.AllRegions))
	assert.Equal(t, all, unknownProduct)

	unknownRegion := e.KPIs(selection(models.AllProducts, "Antarctica"))
	assert.Equal(t, all, unknownRegion)
}

func TestKPIsAdditivesAmericas(t *testing.T) {
	e := NewEngine(nil)

	kpis := e.KPIs(selection(catalog.ProductAdditives, catalog.RegionAmericas))
	byKey := make(map[string]models.KPIRecord)
	for _, k := range kpis {
		byKey[k.Key] = k
	}

	assert.Equal(t, "$5.2M", byKey[models.KPITariffRisk].Value)
	assert.Equal(t, "$192M", byKey[models.KPIRevenue].Value)
	assert.Equal(t, "89.4%", byKey[models.KPIOTIF].Value)
}

func TestScaleFormatted(t *testing.T) {
	tests := []struct {
		value  string
		factor float64
		limit  float64
		want   string
	}{
		{"€980M", 0.35, 0, "€343M"},
		{"€2.94B", 0.35, 0, "€1.03B"},
		{"412K", 0.32, 0, "132K"},
		{"91.2%", 0.98, 100, "89.4%"},
		{"99.5%", 1.2, 100, "100.0%"},
		{"n/a", 2, 0, "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, scaleFormatted(tt.value, tt.factor, tt.limit))
		})
	}
}

func TestAlertsMacroRegion(t *testing.T) {
	e := NewEngine(nil)

	alerts := e.Alerts(selection(models.AllProducts, catalog.RegionEMEA))
	require.NotEmpty(t, alerts)

	allowed := map[string]bool{"EMEA": true, "EMEA North": true, "EMEA South": true}
	for _, a := range alerts {
		assert.True(t, allowed[a.Region], "alert %s region %s", a.ID, a.Region)
	}

	// Every EMEA-family alert in the catalog is present
	for _, a := range e.Catalog().Alerts {
		if allowed[a.Region] {
			assert.Contains(t, alertIDs(alerts), a.ID)
		}
	}

	india := e.Alerts(selection(models.AllProducts, catalog.RegionIndia))
	assert.Equal(t, []string{"8", "10"}, alertIDs(india))
}

func TestAlertsPreserveCatalogOrder(t *testing.T) {
	e := NewEngine(nil)

	all := e.Alerts(models.DefaultFilterSelection())
	assert.Len(t, all, 12)
	assert.Equal(t, alertIDs(e.Catalog().Alerts), alertIDs(all))
}

func TestAlertsProductAndPlant(t *testing.T) {
	e := NewEngine(nil)

	additives := e.Alerts(selection(catalog.ProductAdditives, catalog.RegionAmericas))
	ids := alertIDs(additives)
	assert.Contains(t, ids, "6")
	assert.NotContains(t, ids, "9")
	assert.Equal(t, []string{"5", "6"}, ids)

	sel := selection(catalog.ProductMotorOil, catalog.RegionEMEA)
	assert.Equal(t, []string{"1", "2", "11"}, alertIDs(e.Alerts(sel)))

	sel = sel.Set(models.FacetPlant, "Hamburg Blending Plant")
	assert.Equal(t, []string{"1", "2"}, alertIDs(e.Alerts(sel)))
}

func TestAlertsIgnoreSKUAndSupplier(t *testing.T) {
	e := NewEngine(nil)

	sel := selection(catalog.ProductMotorOil, catalog.RegionEMEA)
	want := alertIDs(e.Alerts(sel))

	sel = sel.Set(models.FacetSKU, "MO-5W30-001")
	sel = sel.Set(models.FacetSupplier, "Nynas")
	assert.Equal(t, want, alertIDs(e.Alerts(sel)))
}

func TestInsights(t *testing.T) {
	e := NewEngine(nil)
	c := e.Catalog()

	all := e.Insights(models.DefaultFilterSelection())
	assert.Equal(t, c.Insights[models.AllProducts], all)

	unknown := e.Insights(selection("Bitumen (2713.20)", models.AllRegions))
	assert.Equal(t, all, unknown)

	regional := e.Insights(selection(catalog.ProductAdditives, catalog.RegionAmericas))
	base := c.Insights[catalog.ProductAdditives]
	assert.Equal(t, "Americas: "+base.Summary, regional.Summary)
	assert.Equal(t, base.KeyFindings, regional.KeyFindings)

	// Mutating the result must not leak into the catalog
	regional.KeyFindings[0] = "changed"
	assert.NotEqual(t, "changed", c.Insights[catalog.ProductAdditives].KeyFindings[0])
}

func TestView(t *testing.T) {
	e := NewEngine(nil)

	sel := selection(catalog.ProductAdditives, catalog.RegionAmericas)
	view := e.View(sel)

	assert.Equal(t, sel, view.Filters)
	assert.Len(t, view.KPIs, 8)
	assert.Equal(t, models.AllPlants, view.Options.Plants[0])
	assert.Equal(t, []string{"5", "6"}, alertIDs(view.Alerts))
}

func TestAlertDetail(t *testing.T) {
	e := NewEngine(nil)

	detail, ok := e.AlertDetail("6")
	require.True(t, ok)
	assert.Equal(t, "6", detail.Alert.ID)
	assert.Len(t, detail.Actions, 4)

	_, ok = e.AlertDetail("404")
	assert.False(t, ok)
}
