package catalog

import "github.com/davidmoltin/command-center/internal/models"

var kpiTitles = map[string]string{
	models.KPIRevenue:          "Revenue",
	models.KPIVolume:           "Volume",
	models.KPIOTIF:             "OTIF %",
	models.KPIInventoryCover:   "Inventory Cover",
	models.KPIForecastAccuracy: "Forecast Accuracy",
	models.KPIInventoryHealth:  "Inventory Health",
	models.KPIRiskScore:        "Risk Score",
	models.KPITariffRisk:       "Tariff Impact",
}

var kpiColors = map[string]string{
	models.KPIRevenue:          "blue",
	models.KPIVolume:           "indigo",
	models.KPIOTIF:             "green",
	models.KPIInventoryCover:   "teal",
	models.KPIForecastAccuracy: "purple",
	models.KPIInventoryHealth:  "emerald",
	models.KPIRiskScore:        "orange",
	models.KPITariffRisk:       "red",
}

// KPITitle returns the display title for a KPI key
func KPITitle(key string) string {
	return kpiTitles[key]
}

func kpi(key, value, unit string, trend models.Trend, trendValue string) models.KPIRecord {
	return models.KPIRecord{
		Key:        key,
		Title:      kpiTitles[key],
		Value:      value,
		Unit:       unit,
		Trend:      trend,
		TrendValue: trendValue,
		Color:      kpiColors[key],
	}
}

func kpiRow(records ...models.KPIRecord) map[string]models.KPIRecord {
	row := make(map[string]models.KPIRecord, len(records))
	for _, r := range records {
		row[r.Key] = r
	}
	return row
}

var kpiBase = map[string]map[string]models.KPIRecord{
	models.AllProducts: kpiRow(
		kpi(models.KPIRevenue, "€2.94B", "", models.TrendUp, "+4.2%"),
		kpi(models.KPIVolume, "995K", "MT", models.TrendUp, "+2.1%"),
		kpi(models.KPIOTIF, "93.1%", "", models.TrendDown, "-1.4%"),
		kpi(models.KPIInventoryCover, "36", "days", models.TrendUp, "+3 days"),
		kpi(models.KPIForecastAccuracy, "86.5%", "", models.TrendUp, "+0.8%"),
		kpi(models.KPIInventoryHealth, "80", "/100", models.TrendDown, "-2 pts"),
		kpi(models.KPIRiskScore, "6.5", "/10", models.TrendUp, "+0.6"),
		kpi(models.KPITariffRisk, "€26.5M", "", models.TrendUp, "+€3.8M"),
	),
	ProductMotorOil: kpiRow(
		kpi(models.KPIRevenue, "€980M", "", models.TrendUp, "+5.6%"),
		kpi(models.KPIVolume, "412K", "MT", models.TrendUp, "+3.2%"),
		kpi(models.KPIOTIF, "94.5%", "", models.TrendDown, "-0.9%"),
		kpi(models.KPIInventoryCover, "32", "days", models.TrendDown, "-2 days"),
		kpi(models.KPIForecastAccuracy, "87.3%", "", models.TrendUp, "+1.1%"),
		kpi(models.KPIInventoryHealth, "82", "/100", models.TrendUp, "+1 pt"),
		kpi(models.KPIRiskScore, "6.8", "/10", models.TrendUp, "+0.9"),
		kpi(models.KPITariffRisk, "€12.4M", "", models.TrendUp, "+€1.6M"),
	),
	ProductIndustrial: kpiRow(
		kpi(models.KPIRevenue, "€720M", "", models.TrendUp, "+2.8%"),
		kpi(models.KPIVolume, "260K", "MT", models.TrendUp, "+1.4%"),
		kpi(models.KPIOTIF, "95.8%", "", models.TrendUp, "+0.5%"),
		kpi(models.KPIInventoryCover, "35", "days", models.TrendUp, "+1 day"),
		kpi(models.KPIForecastAccuracy, "89.4%", "", models.TrendUp, "+0.6%"),
		kpi(models.KPIInventoryHealth, "85", "/100", models.TrendUp, "+2 pts"),
		kpi(models.KPIRiskScore, "5.2", "/10", models.TrendDown, "-0.3"),
		kpi(models.KPITariffRisk, "€4.6M", "", models.TrendDown, "-€0.4M"),
	),
	ProductMarineOil: kpiRow(
		kpi(models.KPIRevenue, "$410M", "", models.TrendUp, "+9.3%"),
		kpi(models.KPIVolume, "180K", "MT", models.TrendUp, "+6.7%"),
		kpi(models.KPIOTIF, "89.7%", "", models.TrendDown, "-3.2%"),
		kpi(models.KPIInventoryCover, "27", "days", models.TrendDown, "-5 days"),
		kpi(models.KPIForecastAccuracy, "82.1%", "", models.TrendDown, "-2.4%"),
		kpi(models.KPIInventoryHealth, "71", "/100", models.TrendDown, "-6 pts"),
		kpi(models.KPIRiskScore, "7.9", "/10", models.TrendUp, "+1.2"),
		kpi(models.KPITariffRisk, "$3.1M", "", models.TrendUp, "+$0.7M"),
	),
	ProductAdditives: kpiRow(
		kpi(models.KPIRevenue, "$640M", "", models.TrendDown, "-1.8%"),
		kpi(models.KPIVolume, "95K", "MT", models.TrendDown, "-2.6%"),
		kpi(models.KPIOTIF, "91.2%", "", models.TrendDown, "-2.1%"),
		kpi(models.KPIInventoryCover, "41", "days", models.TrendUp, "+6 days"),
		kpi(models.KPIForecastAccuracy, "84.6%", "", models.TrendDown, "-0.7%"),
		kpi(models.KPIInventoryHealth, "76", "/100", models.TrendDown, "-3 pts"),
		kpi(models.KPIRiskScore, "7.4", "/10", models.TrendUp, "+1.5"),
		kpi(models.KPITariffRisk, "$5.2M", "", models.TrendUp, "+$2.3M"),
	),
	ProductGreases: kpiRow(
		kpi(models.KPIRevenue, "€190M", "", models.TrendUp, "+1.2%"),
		kpi(models.KPIVolume, "48K", "MT", models.TrendUp, "+0.9%"),
		kpi(models.KPIOTIF, "93.4%", "", models.TrendUp, "+0.3%"),
		kpi(models.KPIInventoryCover, "44", "days", models.TrendUp, "+2 days"),
		kpi(models.KPIForecastAccuracy, "86.2%", "", models.TrendUp, "+0.4%"),
		kpi(models.KPIInventoryHealth, "79", "/100", models.TrendDown, "-1 pt"),
		kpi(models.KPIRiskScore, "4.9", "/10", models.TrendDown, "-0.2"),
		kpi(models.KPITariffRisk, "€1.2M", "", models.TrendDown, "-€0.1M"),
	),
}

// regionMultipliers scale revenue, volume and OTIF for a regional view
var regionMultipliers = map[string]Multiplier{
	RegionEMEA:     {Revenue: 0.35, Volume: 0.32, OTIF: 1.01},
	RegionAmericas: {Revenue: 0.30, Volume: 0.28, OTIF: 0.98},
	RegionAPAC:     {Revenue: 0.22, Volume: 0.25, OTIF: 0.97},
	RegionIndia:    {Revenue: 0.13, Volume: 0.15, OTIF: 0.96},
}
