package catalog

import "github.com/davidmoltin/command-center/internal/models"

var alerts = []models.Alert{
	{
		ID:           "1",
		Title:        "Red Sea Shipping Disruption Delaying Base Oil Imports",
		Description:  "Houthi attacks on vessels transiting Bab el-Mandeb are forcing rerouting via the Cape of Good Hope, adding 12-14 days to Group III base oil shipments into Rotterdam and Hamburg.",
		Severity:     models.SeverityCritical,
		Impact:       "€42M revenue at risk over 6 weeks",
		Region:       "EMEA",
		TimeDetected: "2 hours ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Premium Synthetic Motor Oil 5W-30",
				HSNCode:          "2710.19.81",
				SKUs:             []string{"MO-5W30-001", "MO-0W20-003"},
				Routes:           []string{"Ras Tanura - Rotterdam", "Jubail - Hamburg"},
				ImpactPercentage: 38,
			},
			{
				Name:             "Heavy Duty Engine Oil 10W-40",
				HSNCode:          "2710.19.83",
				SKUs:             []string{"MO-10W40-002"},
				Routes:           []string{"Ras Tanura - Rotterdam"},
				ImpactPercentage: 22,
			},
		},
	},
	{
		ID:           "2",
		Title:        "Hamburg Blending Plant Capacity Constraint",
		Description:  "Unplanned maintenance on blending line 3 at Hamburg has reduced throughput by 30% for the next 10 days.",
		Severity:     models.SeverityHigh,
		Impact:       "18K MT backlog, OTIF down 4 pts",
		Region:       "EMEA North",
		TimeDetected: "5 hours ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Heavy Duty Engine Oil 10W-40",
				HSNCode:          "2710.19.83",
				SKUs:             []string{"MO-10W40-002", "MO-5W30-001"},
				ImpactPercentage: 30,
			},
			{
				Name:             "Hydraulic Oil HM 46",
				HSNCode:          "2710.19.87",
				SKUs:             []string{"IL-HYD46-101"},
				ImpactPercentage: 15,
			},
		},
	},
	{
		ID:           "3",
		Title:        "Barcelona Port Strike Impacting Additive Deliveries",
		Description:  "A 72-hour dockworker strike at the Port of Barcelona is holding 14 containers of detergent and dispersant packages bound for the Barcelona plant.",
		Severity:     models.SeverityMedium,
		Impact:       "€6.1M of production delayed",
		Region:       "EMEA South",
		TimeDetected: "1 day ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Detergent Inhibitor Package",
				HSNCode:          "3811.21.00",
				SKUs:             []string{"AD-DET-302"},
				Routes:           []string{"Barcelona Port - Barcelona Plant"},
				ImpactPercentage: 45,
			},
		},
	},
	{
		ID:           "4",
		Title:        "Gulf Coast Hurricane Risk to Houston Refinery",
		Description:  "NOAA projects a category 3 landfall within 96 hours; the Houston refinery may shut down base stock units as a precaution.",
		Severity:     models.SeverityCritical,
		Impact:       "$58M output at risk",
		Region:       "Americas North",
		TimeDetected: "3 hours ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Premium Synthetic Motor Oil 5W-30",
				HSNCode:          "2710.19.81",
				SKUs:             []string{"MO-5W30-001", "MO-0W20-003"},
				Routes:           []string{"Houston - Chicago", "Houston - Atlanta"},
				ImpactPercentage: 41,
			},
			{
				Name:             "Hydraulic Oil HM 46",
				HSNCode:          "2710.19.87",
				SKUs:             []string{"IL-HYD46-101"},
				Routes:           []string{"Houston - Monterrey"},
				ImpactPercentage: 27,
			},
		},
	},
	{
		ID:           "5",
		Title:        "Viscosity Modifier Shortage in LATAM",
		Description:  "Regional stock of olefin copolymer viscosity index improvers at Sao Paulo is down to 9 days of cover after a supplier allocation cut.",
		Severity:     models.SeverityHigh,
		Impact:       "$9.4M sales exposure",
		Region:       "LATAM",
		TimeDetected: "8 hours ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Viscosity Index Improver OCP",
				HSNCode:          "3811.21.00",
				SKUs:             []string{"AD-VII-301"},
				Routes:           []string{"Santos - Sao Paulo"},
				ImpactPercentage: 52,
			},
			{
				Name:             "Premium Synthetic Motor Oil 5W-30",
				HSNCode:          "2710.19.81",
				SKUs:             []string{"MO-5W30-001"},
				ImpactPercentage: 18,
			},
		},
	},
	{
		ID:           "6",
		Title:        "US Section 301 Tariff Increase on Chinese Additive Imports",
		Description:  "USTR has raised Section 301 duties on lubricant additive packages of Chinese origin from 7.5% to 25%, effective in 30 days.",
		Severity:     models.SeverityHigh,
		Impact:       "$5.2M annual tariff impact",
		Region:       "Americas",
		TimeDetected: "1 day ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Pour Point Depressant Package",
				HSNCode:          "3811.21.00",
				SKUs:             []string{"AD-PPD-303", "AD-VII-301"},
				Routes:           []string{"Ningbo - Los Angeles", "Shanghai - Houston"},
				ImpactPercentage: 25,
			},
			{
				Name:             "Viscosity Index Improver OCP",
				HSNCode:          "3811.21.00",
				SKUs:             []string{"AD-VII-301"},
				Routes:           []string{"Shanghai - Houston"},
				ImpactPercentage: 17,
			},
		},
	},
	{
		ID:           "7",
		Title:        "Shanghai Lockdown Risk to Industrial Lubricant Supply",
		Description:  "Municipal health measures around the Shanghai plant could restrict trucking for up to 14 days.",
		Severity:     models.SeverityMedium,
		Impact:       "¥86M revenue exposure",
		Region:       "APAC North",
		TimeDetected: "12 hours ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Industrial Gear Oil ISO 220",
				HSNCode:          "2710.19.89",
				SKUs:             []string{"IL-GEAR220-102"},
				Routes:           []string{"Shanghai - Suzhou", "Shanghai - Wuhan"},
				ImpactPercentage: 33,
			},
		},
	},
	{
		ID:           "8",
		Title:        "Monsoon Flooding Near Mumbai Plant",
		Description:  "IMD red alert for the Konkan coast; access roads to the Mumbai plant are expected to flood for 3-5 days.",
		Severity:     models.SeverityHigh,
		Impact:       "₹420M dispatches delayed",
		Region:       "India West",
		TimeDetected: "6 hours ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Heavy Duty Engine Oil 10W-40",
				HSNCode:          "2710.19.83",
				SKUs:             []string{"MO-10W40-002"},
				Routes:           []string{"Mumbai - Pune", "Mumbai - Ahmedabad"},
				ImpactPercentage: 29,
			},
			{
				Name:             "Lithium Complex Grease EP2",
				HSNCode:          "3403.99.00",
				SKUs:             []string{"GR-LIX2-401"},
				Routes:           []string{"Mumbai - Nashik"},
				ImpactPercentage: 21,
			},
		},
	},
	{
		ID:           "9",
		Title:        "Marine Oil Demand Spike from IMO Fleet Compliance",
		Description:  "Bunker operators at Singapore are pre-buying cylinder oils ahead of new IMO sulphur rules, pulling demand forward by 40%.",
		Severity:     models.SeverityMedium,
		Impact:       "$14M upside if supply holds",
		Region:       "APAC South",
		TimeDetected: "2 days ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Marine Cylinder Oil 70BN",
				HSNCode:          "2710.20.00",
				SKUs:             []string{"MR-CYL70-202"},
				Routes:           []string{"Singapore - Port Klang"},
				ImpactPercentage: 40,
			},
		},
	},
	{
		ID:           "10",
		Title:        "Chennai Grease Line Quality Deviation",
		Description:  "Dropping point tests on three batches at Chennai fell below specification; batches are on quality hold.",
		Severity:     models.SeverityLow,
		Impact:       "₹35M inventory on hold",
		Region:       "India South",
		TimeDetected: "4 hours ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Molybdenum Grease EP2",
				HSNCode:          "3403.99.00",
				SKUs:             []string{"GR-MOLY-402", "GR-LIX2-401"},
				ImpactPercentage: 12,
			},
		},
	},
	{
		ID:           "11",
		Title:        "EU CBAM Carbon Levy on Base Oil Imports",
		Description:  "The Carbon Border Adjustment Mechanism reporting phase is extending to refined mineral oils, with certificate costs expected from next year.",
		Severity:     models.SeverityMedium,
		Impact:       "€8.7M projected annual cost",
		Region:       "EMEA",
		TimeDetected: "3 days ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Hydraulic Oil HM 46",
				HSNCode:          "2710.19.87",
				SKUs:             []string{"IL-HYD46-101", "IL-GEAR220-102"},
				ImpactPercentage: 9,
			},
			{
				Name:             "Premium Synthetic Motor Oil 5W-30",
				HSNCode:          "2710.19.81",
				SKUs:             []string{"MO-5W30-001"},
				ImpactPercentage: 7,
			},
		},
	},
	{
		ID:           "12",
		Title:        "Panama Canal Draft Restrictions on Marine Shipments",
		Description:  "Low water levels at Gatun Lake cap transits at 24 per day, delaying trunk piston engine oil cargoes to the US West Coast.",
		Severity:     models.SeverityHigh,
		Impact:       "$7.8M in delayed cargo",
		Region:       "Americas",
		TimeDetected: "10 hours ago",
		AffectedProducts: []models.AffectedProduct{
			{
				Name:             "Trunk Piston Engine Oil 40BN",
				HSNCode:          "2710.20.00",
				SKUs:             []string{"MR-TPEO40-201"},
				Routes:           []string{"Houston - Long Beach"},
				ImpactPercentage: 31,
			},
		},
	},
}

// productKeywords are matched case-insensitively against alert titles
var productKeywords = map[string][]string{
	ProductMotorOil:   {"Motor Oil", "Base Oil", "Engine Oil"},
	ProductIndustrial: {"Industrial", "Lubricant"},
	ProductMarineOil:  {"Marine"},
	ProductAdditives:  {"Additive", "Viscosity"},
	ProductGreases:    {"Grease"},
}

// productAlerts whitelists alert ids per product category
var productAlerts = map[string][]string{
	ProductMotorOil:   {"1", "2", "4", "8", "11"},
	ProductIndustrial: {"2", "4", "7", "11"},
	ProductMarineOil:  {"9", "12"},
	ProductAdditives:  {"3", "5", "6"},
	ProductGreases:    {"8", "10"},
}
