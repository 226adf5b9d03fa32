package models

// Trend is the direction of a KPI movement
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// KPIRecord is one derived dashboard metric
type KPIRecord struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Value      string `json:"value"`
	Unit       string `json:"unit,omitempty"`
	Trend      Trend  `json:"trend"`
	TrendValue string `json:"trend_value"`
	Color      string `json:"color"`
}

// KPI keys in dashboard order
const (
	KPIRevenue          = "revenue"
	KPIVolume           = "volume"
	KPIOTIF             = "otif"
	KPIInventoryCover   = "inventoryCover"
	KPIForecastAccuracy = "forecastAccuracy"
	KPIInventoryHealth  = "inventoryHealth"
	KPIRiskScore        = "riskScore"
	KPITariffRisk       = "tariffRisk"
)

// KPIOrder is the fixed order of the eight dashboard KPIs
var KPIOrder = []string{
	KPIRevenue,
	KPIVolume,
	KPIOTIF,
	KPIInventoryCover,
	KPIForecastAccuracy,
	KPIInventoryHealth,
	KPIRiskScore,
	KPITariffRisk,
}

// Severity of an alert
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// AffectedProduct describes a product line hit by an alert
type AffectedProduct struct {
	Name             string   `json:"name"`
	HSNCode          string   `json:"hsn_code"`
	SKUs             []string `json:"skus"`
	Routes           []string `json:"routes,omitempty"`
	ImpactPercentage int      `json:"impact_percentage,omitempty"`
}

// Alert is a static supply-chain disruption record
type Alert struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Severity         Severity          `json:"severity"`
	Impact           string            `json:"impact"`
	Region           string            `json:"region"`
	TimeDetected     string            `json:"time_detected"`
	AffectedProducts []AffectedProduct `json:"affected_products,omitempty"`
}

// RecommendedAction is a predefined mitigation attached to an alert
type RecommendedAction struct {
	ID          string `json:"id"`
	Action      string `json:"action"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Cost        string `json:"cost"`
	Confidence  int    `json:"confidence"`
	Owner       string `json:"owner"`
	Timeline    string `json:"timeline"`
}

// AIInsight is the static insight bundle shown next to the KPIs
type AIInsight struct {
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	KeyFindings     []string `json:"key_findings"`
	Recommendations []string `json:"recommendations"`
	Confidence      int      `json:"confidence"`
}

// FilterOptions holds the dependent facet option lists
type FilterOptions struct {
	Plants    []string `json:"plants"`
	SKUs      []string `json:"skus"`
	Suppliers []string `json:"suppliers"`
}

// DashboardView bundles everything derived from one FilterSelection
type DashboardView struct {
	Filters  FilterSelection `json:"filters"`
	Options  FilterOptions   `json:"options"`
	KPIs     []KPIRecord     `json:"kpis"`
	Alerts   []Alert         `json:"alerts"`
	Insights AIInsight       `json:"insights"`
}

// AlertDetail is an alert with its recommended actions
type AlertDetail struct {
	Alert   Alert               `json:"alert"`
	Actions []RecommendedAction `json:"actions"`
}
