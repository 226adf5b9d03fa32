package catalog

import "github.com/davidmoltin/command-center/internal/models"

func act(id, action, description, impact, cost string, confidence int, owner, timeline string) models.RecommendedAction {
	return models.RecommendedAction{
		ID:          id,
		Action:      action,
		Description: description,
		Impact:      impact,
		Cost:        cost,
		Confidence:  confidence,
		Owner:       owner,
		Timeline:    timeline,
	}
}

var recommendedActions = map[string][]models.RecommendedAction{
	"1": {
		act("1-1", "Activate secondary Base Oil supplier", "Shift 40% of Group III Base Oil volume to the Nynas Nynashamn refinery under the existing framework contract.", "Recovers 70% of delayed volume", "€1.8M", 92, "Procurement", "5 days"),
		act("1-2", "Air-freight critical Additive packages", "Air-freight Additive concentrate for the top 5 SKUs to keep blending lines running.", "Protects €12M of revenue", "€640K", 85, "Logistics", "48 hours"),
		act("1-3", "Rebalance stock from Barcelona", "Transfer finished goods from Barcelona to northern distribution centres.", "Covers 9 days of demand", "€210K", 78, "Supply Planning", "3 days"),
		act("1-4", "Notify key accounts", "Proactively inform top 20 customers about possible lead-time extensions.", "Reduces churn risk", "€15K", 88, "Sales", "24 hours"),
	},
	"2": {
		act("2-1", "Shift blending to Rotterdam", "Move 10W-40 batches to the Rotterdam terminal blending skid.", "Restores 60% of lost capacity", "€320K", 86, "Operations", "4 days"),
		act("2-2", "Expedite spare parts", "Expedite the replacement gearbox from the OEM in Munich.", "Shortens outage by 4 days", "€95K", 81, "Maintenance", "2 days"),
		act("2-3", "Add weekend shifts", "Run two additional weekend shifts on lines 1 and 2.", "Adds 2.4K MT of output", "€140K", 90, "Operations", "1 week"),
		act("2-4", "Prioritise high-margin SKUs", "Re-sequence the production plan to favour premium synthetic SKUs.", "Protects €3.1M margin", "€0", 74, "Supply Planning", "Immediate"),
	},
	"3": {
		act("3-1", "Reroute via Valencia", "Redirect inbound Additive containers to the Port of Valencia and truck to Barcelona.", "Cuts delay to 2 days", "€120K", 87, "Logistics", "3 days"),
		act("3-2", "Draw down safety stock", "Release detergent package safety stock held at Rotterdam.", "Covers 6 days of production", "€40K", 91, "Supply Planning", "24 hours"),
		act("3-3", "Source locally from Infineum", "Place a spot order for Additive packages with Infineum's Spanish distributor.", "Secures 200 MT", "€410K", 76, "Procurement", "5 days"),
		act("3-4", "Delay non-critical batches", "Push low-priority industrial batches to next week.", "Frees 1.1K MT capacity", "€0", 69, "Operations", "Immediate"),
	},
	"4": {
		act("4-1", "Pre-build inventory", "Run Houston base stock units at maximum rate before landfall to build 10 days of cover.", "Buffers 10 days of demand", "$1.2M", 89, "Operations", "72 hours"),
		act("4-2", "Secure Base Oil from Chevron Oronite", "Contract contingent Base Oil cargoes from Chevron Pascagoula.", "Replaces 55% of lost supply", "$2.6M", 80, "Procurement", "1 week"),
		act("4-3", "Pre-position trucks inland", "Move 40 tankers to Dallas to resume distribution quickly.", "Cuts recovery time by 3 days", "$180K", 84, "Logistics", "48 hours"),
		act("4-4", "Activate business continuity plan", "Stand up the incident command team and customer hotline.", "Improves response coordination", "$60K", 95, "Risk Management", "24 hours"),
	},
	"5": {
		act("5-1", "Qualify alternative Viscosity modifier", "Qualify a hydrogenated styrene-diene Viscosity modifier from Afton Chemical.", "Restores 80% of supply", "$450K", 77, "R&D", "3 weeks"),
		act("5-2", "Transfer stock from Houston", "Ship 300 MT of OCP from Houston to Santos.", "Adds 12 days of cover", "$260K", 88, "Logistics", "10 days"),
		act("5-3", "Reformulate 5W-30 blend", "Adjust Viscosity grade targets to reduce modifier treat rate by 15%.", "Cuts demand by 15%", "$90K", 72, "R&D", "2 weeks"),
		act("5-4", "Allocate to strategic customers", "Allocate remaining inventory to OEM factory-fill contracts first.", "Protects $4.2M of contracts", "$0", 83, "Sales", "Immediate"),
	},
	"6": {
		act("6-1", "Shift Additive sourcing to Singapore", "Move pour point depressant and Additive purchasing to the Singapore production hub.", "Avoids $3.9M of duty", "$310K", 86, "Procurement", "6 weeks"),
		act("6-2", "Apply for tariff exclusion", "File a Section 301 product exclusion request for PPD packages.", "Potential full duty refund", "$45K", 58, "Trade Compliance", "90 days"),
		act("6-3", "Front-load imports", "Bring forward 3 months of Chinese Additive imports before the duty increase takes effect.", "Saves $1.1M of duty", "$520K", 82, "Supply Planning", "30 days"),
		act("6-4", "Use bonded warehouse", "Store Additive inventory in a foreign-trade zone to defer duty payments.", "Defers $2.4M cash outflow", "$75K", 79, "Trade Compliance", "2 weeks"),
	},
	"7": {
		act("7-1", "Build buffer at Suzhou", "Move finished gear oil to the Suzhou warehouse outside the control zone.", "Secures 14 days of supply", "¥1.9M", 85, "Logistics", "4 days"),
		act("7-2", "Supply APAC from Singapore", "Serve eastern China customers from the Singapore plant.", "Covers 45% of demand", "¥3.4M", 73, "Supply Planning", "2 weeks"),
		act("7-3", "Secure driver permits", "Apply for essential-goods transport permits.", "Keeps 60% of fleet moving", "¥120K", 80, "Operations", "3 days"),
		act("7-4", "Customer communication", "Share revised lead times with key industrial accounts.", "Maintains trust", "¥20K", 90, "Sales", "24 hours"),
	},
	"8": {
		act("8-1", "Pre-dispatch to Pune", "Dispatch 5 days of finished goods to the Pune depot before roads close.", "Avoids 70% of delays", "₹6.5M", 88, "Logistics", "48 hours"),
		act("8-2", "Secure Base Oil rail slots", "Book rail slots for Base Oil inbound from Reliance Jamnagar.", "Keeps plant supplied", "₹4.2M", 79, "Procurement", "3 days"),
		act("8-3", "Protect critical equipment", "Install flood barriers around the blending hall.", "Prevents equipment damage", "₹2.8M", 93, "Maintenance", "24 hours"),
		act("8-4", "Serve west India from Chennai", "Route urgent grease orders from the Chennai plant.", "Covers 35% of demand", "₹3.1M", 71, "Supply Planning", "1 week"),
	},
	"9": {
		act("9-1", "Increase cylinder oil production", "Add a campaign of 70BN cylinder oil at Singapore.", "Captures $9M of upside", "$800K", 84, "Operations", "2 weeks"),
		act("9-2", "Secure Base Oil for marine blends", "Lock in additional Group I Base Oil from SK Lubricants.", "Supports +40% output", "$1.5M", 81, "Procurement", "10 days"),
		act("9-3", "Dynamic pricing", "Introduce a compliance-window price premium for spot bunker buyers.", "Adds $2.2M margin", "$0", 66, "Commercial", "1 week"),
		act("9-4", "Allocate to contract customers", "Prioritise volume to fleet contracts over spot demand.", "Protects renewal pipeline", "$0", 87, "Sales", "Immediate"),
	},
	"10": {
		act("10-1", "Root-cause batch deviation", "Run a lab investigation on thickener and Additive dosing.", "Prevents repeat deviation", "₹800K", 90, "Quality", "5 days"),
		act("10-2", "Rework held batches", "Re-mill held batches with a corrective thickener addition.", "Recovers 80% of held stock", "₹1.2M", 75, "Operations", "1 week"),
		act("10-3", "Supply from Mumbai", "Cover grease orders from Mumbai inventory.", "Avoids stockouts", "₹600K", 82, "Supply Planning", "3 days"),
		act("10-4", "Tighten incoming inspection", "Test every lithium hydroxide lot on receipt.", "Reduces supplier risk", "₹250K", 86, "Quality", "2 weeks"),
	},
	"11": {
		act("11-1", "Map embedded emissions", "Collect refinery emissions data from every Base Oil supplier.", "Ensures reporting compliance", "€150K", 92, "Sustainability", "8 weeks"),
		act("11-2", "Shift to low-carbon suppliers", "Increase share of re-refined Base Oil in EU blends.", "Cuts certificate cost by 30%", "€900K", 70, "Procurement", "6 months"),
		act("11-3", "Price CBAM into contracts", "Add carbon cost pass-through clauses to industrial contracts.", "Recovers €5M annually", "€40K", 74, "Commercial", "3 months"),
		act("11-4", "Hedge certificate exposure", "Buy forward EU allowances to cap certificate costs.", "Caps cost volatility", "€2.1M", 63, "Finance", "1 month"),
	},
	"12": {
		act("12-1", "Ship via Cape Horn", "Route two marine oil cargoes around South America.", "Guarantees delivery", "$640K", 83, "Logistics", "3 weeks"),
		act("12-2", "Rail across the US", "Trans-load at Houston and rail to Long Beach.", "Cuts delay by 9 days", "$410K", 80, "Logistics", "2 weeks"),
		act("12-3", "Book priority canal slots", "Bid for priority transit slots at auction.", "Restores schedule", "$290K", 68, "Logistics", "1 week"),
		act("12-4", "Blend locally in California", "Toll-blend trunk piston engine oil with a Richmond partner using local Base Oil.", "Covers 50% of demand", "$520K", 71, "Operations", "3 weeks"),
	},
}
