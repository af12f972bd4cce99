package icon

import "github.com/watchmen-in/cisadex-engine/entity"

// Info is the visual identity behind one tag: map marker color, glyph,
// and human-readable label.
type Info struct {
	Color string
	Glyph string
	Label string
}

// genericInfo is the fallback identity for mixed clusters and entities
// with no recognizable sector, function, or agency signal.
var genericInfo = Info{Color: "#5b6770", Glyph: "🏛️", Label: "Federal Facility"}

// sectorInfo maps every critical-infrastructure sector to its identity.
var sectorInfo = map[entity.Sector]Info{
	entity.SectorChemical:              {Color: "#8e44ad", Glyph: "⚗️", Label: "Chemical"},
	entity.SectorCommercialFacilities:  {Color: "#95a5a6", Glyph: "🏬", Label: "Commercial Facilities"},
	entity.SectorCommunications:        {Color: "#2980b9", Glyph: "📡", Label: "Communications"},
	entity.SectorCriticalManufacturing: {Color: "#7f8c8d", Glyph: "🏭", Label: "Critical Manufacturing"},
	entity.SectorDams:                  {Color: "#16a085", Glyph: "🌊", Label: "Dams"},
	entity.SectorDefenseIndustrialBase: {Color: "#2c3e50", Glyph: "🛡️", Label: "Defense Industrial Base"},
	entity.SectorEmergencyServices:     {Color: "#c0392b", Glyph: "🚨", Label: "Emergency Services"},
	entity.SectorEnergy:                {Color: "#f39c12", Glyph: "⚡", Label: "Energy"},
	entity.SectorFinancialServices:     {Color: "#27ae60", Glyph: "🏦", Label: "Financial Services"},
	entity.SectorFoodAgriculture:       {Color: "#d35400", Glyph: "🌾", Label: "Food & Agriculture"},
	entity.SectorGovernmentFacilities:  {Color: "#34495e", Glyph: "🏛️", Label: "Government Facilities"},
	entity.SectorHealthcare:            {Color: "#e74c3c", Glyph: "🏥", Label: "Healthcare & Public Health"},
	entity.SectorInformationTechnology: {Color: "#3498db", Glyph: "💻", Label: "Information Technology"},
	entity.SectorNuclear:               {Color: "#f1c40f", Glyph: "☢️", Label: "Nuclear"},
	entity.SectorTransportationSystems: {Color: "#e67e22", Glyph: "🚆", Label: "Transportation Systems"},
	entity.SectorWaterWastewater:       {Color: "#1abc9c", Glyph: "💧", Label: "Water & Wastewater"},
}

// functionInfo maps every operational function to its identity.
var functionInfo = map[entity.Function]Info{
	entity.FunctionLawEnforcement:          {Color: "#2c3e50", Glyph: "⚖️", Label: "Law Enforcement"},
	entity.FunctionIntelligence:            {Color: "#4b3869", Glyph: "🕵️", Label: "Intelligence"},
	entity.FunctionIncidentResponse:        {Color: "#c0392b", Glyph: "🚒", Label: "Incident Response"},
	entity.FunctionCyberForensics:          {Color: "#2980b9", Glyph: "🔍", Label: "Cyber Forensics"},
	entity.FunctionThreatAnalysis:          {Color: "#8e44ad", Glyph: "📊", Label: "Threat Analysis"},
	entity.FunctionVulnerabilityAssessment: {Color: "#d35400", Glyph: "🧪", Label: "Vulnerability Assessment"},
	entity.FunctionEmergencyManagement:     {Color: "#e67e22", Glyph: "🆘", Label: "Emergency Management"},
	entity.FunctionResearch:                {Color: "#16a085", Glyph: "🔬", Label: "Research"},
	entity.FunctionTraining:                {Color: "#27ae60", Glyph: "🎓", Label: "Training"},
	entity.FunctionOutreach:                {Color: "#95a5a6", Glyph: "🤝", Label: "Outreach"},
}

// agencyInfo maps every parent agency to its identity.
var agencyInfo = map[entity.Agency]Info{
	entity.AgencyCISA:  {Color: "#005288", Glyph: "🛡️", Label: "CISA"},
	entity.AgencyFBI:   {Color: "#1f3864", Glyph: "🏢", Label: "FBI"},
	entity.AgencyUSSS:  {Color: "#0b3d2e", Glyph: "⭐", Label: "U.S. Secret Service"},
	entity.AgencyDHS:   {Color: "#003366", Glyph: "🦅", Label: "DHS"},
	entity.AgencyFEMA:  {Color: "#00338d", Glyph: "⛑️", Label: "FEMA"},
	entity.AgencyNIST:  {Color: "#006f98", Glyph: "📐", Label: "NIST"},
	entity.AgencyNSA:   {Color: "#1c1c1c", Glyph: "🔒", Label: "NSA"},
	entity.AgencyDOE:   {Color: "#1a7f37", Glyph: "⚛️", Label: "Department of Energy"},
	entity.AgencyEPA:   {Color: "#2e8540", Glyph: "🌿", Label: "EPA"},
	entity.AgencyTSA:   {Color: "#2a4d8f", Glyph: "✈️", Label: "TSA"},
	entity.AgencyUSCG:  {Color: "#003366", Glyph: "⚓", Label: "U.S. Coast Guard"},
	entity.AgencyHHS:   {Color: "#b31942", Glyph: "🏥", Label: "HHS"},
	entity.AgencyUSDA:  {Color: "#336633", Glyph: "🌽", Label: "USDA"},
	entity.AgencyTreas: {Color: "#85714d", Glyph: "💵", Label: "Treasury"},
}

// sectorPriority orders sectors from highest to lowest precedence for
// tie-breaking and fallback ordering. Government facilities outrank every
// operational sector; commercial facilities rank last.
var sectorPriority = []entity.Sector{
	entity.SectorGovernmentFacilities,
	entity.SectorEnergy,
	entity.SectorNuclear,
	entity.SectorWaterWastewater,
	entity.SectorCommunications,
	entity.SectorInformationTechnology,
	entity.SectorTransportationSystems,
	entity.SectorDefenseIndustrialBase,
	entity.SectorEmergencyServices,
	entity.SectorHealthcare,
	entity.SectorFinancialServices,
	entity.SectorChemical,
	entity.SectorDams,
	entity.SectorCriticalManufacturing,
	entity.SectorFoodAgriculture,
	entity.SectorCommercialFacilities,
}

// functionPriority orders functions from highest to lowest precedence.
// Law enforcement outranks everything; outreach ranks last.
var functionPriority = []entity.Function{
	entity.FunctionLawEnforcement,
	entity.FunctionIntelligence,
	entity.FunctionIncidentResponse,
	entity.FunctionCyberForensics,
	entity.FunctionThreatAnalysis,
	entity.FunctionVulnerabilityAssessment,
	entity.FunctionEmergencyManagement,
	entity.FunctionResearch,
	entity.FunctionTraining,
	entity.FunctionOutreach,
}
