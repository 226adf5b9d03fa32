package models

// Facet names a user-selectable filter dimension
type Facet string

const (
	FacetProduct  Facet = "product"
	FacetRegion   Facet = "region"
	FacetPlant    Facet = "plant"
	FacetSKU      Facet = "sku"
	FacetSupplier Facet = "supplier"
)

// Sentinel values meaning "no filter applied" for each facet
const (
	AllProducts  = "All Products"
	AllRegions   = "All Regions"
	AllPlants    = "All Plants"
	AllSKUs      = "All SKUs"
	AllSuppliers = "All Suppliers"
)

// FilterSelection is the current value of every facet for one session
type FilterSelection struct {
	Product  string `json:"product"`
	Region   string `json:"region"`
	Plant    string `json:"plant"`
	SKU      string `json:"sku"`
	Supplier string `json:"supplier"`
}

// DefaultFilterSelection returns a selection with every facet at its sentinel
func DefaultFilterSelection() FilterSelection {
	return FilterSelection{
		Product:  AllProducts,
		Region:   AllRegions,
		Plant:    AllPlants,
		SKU:      AllSKUs,
		Supplier: AllSuppliers,
	}
}

// Set returns a copy of the selection with one facet changed.
// Changing product or region to a different value resets plant, sku and supplier.
// Unknown facets leave the selection untouched.
func (f FilterSelection) Set(facet Facet, value string) FilterSelection {
	switch facet {
	case FacetProduct:
		if value != f.Product {
			f.Product = value
			f.resetDependents()
		}
	case FacetRegion:
		if value != f.Region {
			f.Region = value
			f.resetDependents()
		}
	case FacetPlant:
		f.Plant = value
	case FacetSKU:
		f.SKU = value
	case FacetSupplier:
		f.Supplier = value
	}
	return f
}

func (f *FilterSelection) resetDependents() {
	f.Plant = AllPlants
	f.SKU = AllSKUs
	f.Supplier = AllSuppliers
}

// Sentinel returns the "All" value for a facet
func Sentinel(facet Facet) string {
	switch facet {
	case FacetProduct:
		return AllProducts
	case FacetRegion:
		return AllRegions
	case FacetPlant:
		return AllPlants
	case FacetSKU:
		return AllSKUs
	case FacetSupplier:
		return AllSuppliers
	}
	return ""
}

// ParseFacet converts a request string to a Facet
func ParseFacet(s string) (Facet, bool) {
	switch Facet(s) {
	case FacetProduct, FacetRegion, FacetPlant, FacetSKU, FacetSupplier:
		return Facet(s), true
	}
	return "", false
}
