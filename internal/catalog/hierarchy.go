package catalog

import "github.com/davidmoltin/command-center/internal/models"

// Products and regions offered by the facet pickers
const (
	ProductMotorOil   = "Motor Oil (2710.19)"
	ProductIndustrial = "Industrial Lubricants (2710.19)"
	ProductMarineOil  = "Marine Oil (2710.20)"
	ProductAdditives  = "Additives (3811.21)"
	ProductGreases    = "Greases (3403.99)"

	RegionEMEA     = "EMEA"
	RegionAmericas = "Americas"
	RegionAPAC     = "APAC"
	RegionIndia    = "India"
)

const (
	plantHamburg   = "Hamburg Blending Plant"
	plantRotterdam = "Rotterdam Terminal"
	plantBarcelona = "Barcelona Plant"
	plantHouston   = "Houston Refinery"
	plantSaoPaulo  = "Sao Paulo Plant"
	plantShanghai  = "Shanghai Plant"
	plantSingapore = "Singapore Plant"
	plantMumbai    = "Mumbai Plant"
	plantChennai   = "Chennai Plant"
)

const (
	supplierShell    = "Shell Base Oils"
	supplierExxon    = "ExxonMobil Chemical"
	supplierLubrizol = "Lubrizol"
	supplierInfineum = "Infineum"
	supplierAfton    = "Afton Chemical"
	supplierSK       = "SK Lubricants"
	supplierReliance = "Reliance Industries"
	supplierOronite  = "Chevron Oronite"
	supplierNynas    = "Nynas"
)

var products = []string{
	models.AllProducts,
	ProductMotorOil,
	ProductIndustrial,
	ProductMarineOil,
	ProductAdditives,
	ProductGreases,
}

var regions = []string{
	models.AllRegions,
	RegionEMEA,
	RegionAmericas,
	RegionAPAC,
	RegionIndia,
}

var plants = []Plant{
	{Name: plantHamburg, City: "Hamburg", Region: "EMEA North"},
	{Name: plantRotterdam, City: "Rotterdam", Region: "EMEA North"},
	{Name: plantBarcelona, City: "Barcelona", Region: "EMEA South"},
	{Name: plantHouston, City: "Houston", Region: "Americas North"},
	{Name: plantSaoPaulo, City: "Sao Paulo", Region: "LATAM"},
	{Name: plantShanghai, City: "Shanghai", Region: "APAC North"},
	{Name: plantSingapore, City: "Singapore", Region: "APAC South"},
	{Name: plantMumbai, City: "Mumbai", Region: "India West"},
	{Name: plantChennai, City: "Chennai", Region: "India South"},
}

var skus = []string{
	"MO-5W30-001",
	"MO-10W40-002",
	"MO-0W20-003",
	"IL-HYD46-101",
	"IL-GEAR220-102",
	"MR-TPEO40-201",
	"MR-CYL70-202",
	"AD-VII-301",
	"AD-DET-302",
	"AD-PPD-303",
	"GR-LIX2-401",
	"GR-MOLY-402",
}

var suppliers = []string{
	supplierShell,
	supplierExxon,
	supplierLubrizol,
	supplierInfineum,
	supplierAfton,
	supplierSK,
	supplierReliance,
	supplierOronite,
	supplierNynas,
}

// macroRegions maps a selectable region to the alert regions it covers
var macroRegions = map[string][]string{
	RegionEMEA:     {"EMEA", "EMEA North", "EMEA South"},
	RegionAmericas: {"Americas", "Americas North", "LATAM"},
	RegionAPAC:     {"APAC", "APAC North", "APAC South"},
	RegionIndia:    {"India", "India West", "India South"},
}

var hierarchy = map[string]map[string]Scope{
	ProductMotorOil: {
		RegionEMEA: {
			Plants:    []string{plantHamburg, plantBarcelona},
			SKUs:      []string{"MO-5W30-001", "MO-10W40-002"},
			Suppliers: []string{supplierShell, supplierInfineum},
		},
		RegionAmericas: {
			Plants:    []string{plantHouston, plantSaoPaulo},
			SKUs:      []string{"MO-5W30-001", "MO-0W20-003"},
			Suppliers: []string{supplierExxon, supplierOronite},
		},
		RegionAPAC: {
			Plants:    []string{plantSingapore},
			SKUs:      []string{"MO-0W20-003"},
			Suppliers: []string{supplierSK},
		},
		RegionIndia: {
			Plants:    []string{plantMumbai},
			SKUs:      []string{"MO-10W40-002"},
			Suppliers: []string{supplierReliance, supplierInfineum},
		},
	},
	ProductIndustrial: {
		RegionEMEA: {
			Plants:    []string{plantHamburg, plantRotterdam},
			SKUs:      []string{"IL-HYD46-101", "IL-GEAR220-102"},
			Suppliers: []string{supplierShell, supplierNynas},
		},
		RegionAmericas: {
			Plants:    []string{plantHouston},
			SKUs:      []string{"IL-HYD46-101"},
			Suppliers: []string{supplierExxon},
		},
		RegionAPAC: {
			Plants:    []string{plantShanghai, plantSingapore},
			SKUs:      []string{"IL-GEAR220-102"},
			Suppliers: []string{supplierSK, supplierShell},
		},
	},
	ProductMarineOil: {
		RegionEMEA: {
			Plants:    []string{plantRotterdam},
			SKUs:      []string{"MR-TPEO40-201", "MR-CYL70-202"},
			Suppliers: []string{supplierShell, supplierOronite},
		},
		RegionAPAC: {
			Plants:    []string{plantSingapore},
			SKUs:      []string{"MR-CYL70-202"},
			Suppliers: []string{supplierSK},
		},
	},
	ProductAdditives: {
		RegionEMEA: {
			Plants:    []string{plantRotterdam, plantBarcelona},
			SKUs:      []string{"AD-VII-301", "AD-DET-302"},
			Suppliers: []string{supplierLubrizol, supplierInfineum},
		},
		RegionAmericas: {
			Plants:    []string{plantHouston},
			SKUs:      []string{"AD-VII-301", "AD-PPD-303"},
			Suppliers: []string{supplierLubrizol, supplierAfton, supplierOronite},
		},
		RegionIndia: {
			Plants:    []string{plantChennai},
			SKUs:      []string{"AD-DET-302"},
			Suppliers: []string{supplierAfton},
		},
	},
	ProductGreases: {
		RegionEMEA: {
			Plants:    []string{plantBarcelona},
			SKUs:      []string{"GR-LIX2-401"},
			Suppliers: []string{supplierNynas},
		},
		RegionIndia: {
			Plants:    []string{plantMumbai, plantChennai},
			SKUs:      []string{"GR-LIX2-401", "GR-MOLY-402"},
			Suppliers: []string{supplierReliance},
		},
	},
}
