package catalog

import "github.com/davidmoltin/command-center/internal/models"

var insights = map[string]models.AIInsight{
	models.AllProducts: {
		Title:   "Portfolio Supply Outlook",
		Summary: "Revenue is tracking 4.2% ahead of plan, but OTIF has slipped 1.4 pts as Red Sea rerouting and the Gulf Coast hurricane threat stretch base oil lead times.",
		KeyFindings: []string{
			"Two critical alerts account for €100M of revenue at risk",
			"Inventory cover improved by 3 days driven by additive pre-buys",
			"Tariff exposure rose €3.8M quarter on quarter",
		},
		Recommendations: []string{
			"Activate secondary base oil sourcing for EMEA",
			"Pre-build US inventory ahead of hurricane landfall",
			"Review additive sourcing footprint against Section 301 duties",
		},
		Confidence: 87,
	},
	ProductMotorOil: {
		Title:   "Motor Oil Performance",
		Summary: "Motor oil demand remains strong at +5.6% revenue, while inventory cover has fallen to 32 days because Group III base oil arrivals are delayed.",
		KeyFindings: []string{
			"5W-30 synthetic SKUs drive 62% of growth",
			"Hamburg capacity constraint adds a 18K MT backlog",
			"Forecast accuracy up 1.1 pts after demand sensing rollout",
		},
		Recommendations: []string{
			"Shift 10W-40 blending to Rotterdam",
			"Air-freight additive concentrate for top SKUs",
		},
		Confidence: 89,
	},
	ProductIndustrial: {
		Title:   "Industrial Lubricants Stability",
		Summary: "Industrial lubricants are the most resilient category with OTIF at 95.8% and a declining risk score.",
		KeyFindings: []string{
			"Hydraulic oil volumes up 1.4% on construction demand",
			"Shanghai trucking restrictions are the main open risk",
		},
		Recommendations: []string{
			"Build a 14-day buffer at Suzhou",
			"Lock in CBAM pass-through clauses on EU contracts",
		},
		Confidence: 84,
	},
	ProductMarineOil: {
		Title:   "Marine Oil Demand Surge",
		Summary: "IMO compliance buying has pulled marine demand forward by 40%, draining inventory cover to 27 days.",
		KeyFindings: []string{
			"Cylinder oil 70BN orders up 40% at Singapore",
			"Panama Canal restrictions delay West Coast cargoes by 9-12 days",
			"Inventory health down 6 pts",
		},
		Recommendations: []string{
			"Add a 70BN production campaign at Singapore",
			"Rail trunk piston engine oil across the US",
		},
		Confidence: 81,
	},
	ProductAdditives: {
		Title:   "Additives Cost Pressure",
		Summary: "Additive revenue is down 1.8% as tariff impact climbs to $5.2M and viscosity modifier supply tightens in LATAM.",
		KeyFindings: []string{
			"Section 301 increase lifts duty on Chinese packages to 25%",
			"OCP viscosity modifier cover at Sao Paulo is 9 days",
			"Barcelona port strike holds 14 containers",
		},
		Recommendations: []string{
			"Shift additive sourcing to the Singapore hub",
			"Qualify an alternative viscosity modifier",
			"File a tariff exclusion request",
		},
		Confidence: 86,
	},
	ProductGreases: {
		Title:   "Greases Quality Watch",
		Summary: "Grease volumes are stable, but a dropping-point deviation at Chennai has put ₹35M of stock on quality hold.",
		KeyFindings: []string{
			"Three Chennai batches below specification",
			"Monsoon risk to Mumbai dispatches",
		},
		Recommendations: []string{
			"Run root-cause analysis on thickener dosing",
			"Cover orders from Mumbai inventory",
		},
		Confidence: 83,
	},
}
