package entity

import "fmt"

// OfficeType classifies an entity by its organizational role.
type OfficeType string

const (
	TypeHeadquarters     OfficeType = "headquarters"
	TypeRegionalOffice   OfficeType = "regional_office"
	TypeFieldOffice      OfficeType = "field_office"
	TypeLaboratory       OfficeType = "laboratory"
	TypeOperationsCenter OfficeType = "operations_center"
	TypeFusionCenter     OfficeType = "fusion_center"
	TypeTrainingCenter   OfficeType = "training_center"
)

// IsValid returns true if the office type is one of the known values.
func (t OfficeType) IsValid() bool {
	switch t {
	case TypeHeadquarters, TypeRegionalOffice, TypeFieldOffice, TypeLaboratory,
		TypeOperationsCenter, TypeFusionCenter, TypeTrainingCenter:
		return true
	default:
		return false
	}
}

// String returns the string representation of the office type.
func (t OfficeType) String() string { return string(t) }

// Agency identifies the parent federal agency of an entity.
type Agency string

const (
	AgencyCISA  Agency = "cisa"
	AgencyFBI   Agency = "fbi"
	AgencyUSSS  Agency = "usss"
	AgencyDHS   Agency = "dhs"
	AgencyFEMA  Agency = "fema"
	AgencyNIST  Agency = "nist"
	AgencyNSA   Agency = "nsa"
	AgencyDOE   Agency = "doe"
	AgencyEPA   Agency = "epa"
	AgencyTSA   Agency = "tsa"
	AgencyUSCG  Agency = "uscg"
	AgencyHHS   Agency = "hhs"
	AgencyUSDA  Agency = "usda"
	AgencyTreas Agency = "treasury"
)

// IsValid returns true if the agency is one of the known values.
func (a Agency) IsValid() bool {
	switch a {
	case AgencyCISA, AgencyFBI, AgencyUSSS, AgencyDHS, AgencyFEMA, AgencyNIST,
		AgencyNSA, AgencyDOE, AgencyEPA, AgencyTSA, AgencyUSCG, AgencyHHS,
		AgencyUSDA, AgencyTreas:
		return true
	default:
		return false
	}
}

// String returns the string representation of the agency.
func (a Agency) String() string { return string(a) }

// Sector is a critical-infrastructure sector tag. The values follow the
// sixteen CISA critical-infrastructure sectors.
type Sector string

const (
	SectorChemical              Sector = "chemical"
	SectorCommercialFacilities  Sector = "commercial_facilities"
	SectorCommunications        Sector = "communications"
	SectorCriticalManufacturing Sector = "critical_manufacturing"
	SectorDams                  Sector = "dams"
	SectorDefenseIndustrialBase Sector = "defense_industrial_base"
	SectorEmergencyServices     Sector = "emergency_services"
	SectorEnergy                Sector = "energy"
	SectorFinancialServices     Sector = "financial_services"
	SectorFoodAgriculture       Sector = "food_agriculture"
	SectorGovernmentFacilities  Sector = "government_facilities"
	SectorHealthcare            Sector = "healthcare_public_health"
	SectorInformationTechnology Sector = "information_technology"
	SectorNuclear               Sector = "nuclear"
	SectorTransportationSystems Sector = "transportation_systems"
	SectorWaterWastewater       Sector = "water_wastewater"
)

// Sectors lists all known sector tags in declaration order.
func Sectors() []Sector {
	return []Sector{
		SectorChemical, SectorCommercialFacilities, SectorCommunications,
		SectorCriticalManufacturing, SectorDams, SectorDefenseIndustrialBase,
		SectorEmergencyServices, SectorEnergy, SectorFinancialServices,
		SectorFoodAgriculture, SectorGovernmentFacilities, SectorHealthcare,
		SectorInformationTechnology, SectorNuclear,
		SectorTransportationSystems, SectorWaterWastewater,
	}
}

// IsValid returns true if the sector is one of the known values.
func (s Sector) IsValid() bool {
	for _, known := range Sectors() {
		if s == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the sector.
func (s Sector) String() string { return string(s) }

// Function is an operational-role tag.
type Function string

const (
	FunctionLawEnforcement          Function = "law_enforcement"
	FunctionIntelligence            Function = "intelligence"
	FunctionIncidentResponse        Function = "incident_response"
	FunctionCyberForensics          Function = "cyber_forensics"
	FunctionThreatAnalysis          Function = "threat_analysis"
	FunctionVulnerabilityAssessment Function = "vulnerability_assessment"
	FunctionEmergencyManagement     Function = "emergency_management"
	FunctionResearch                Function = "research"
	FunctionTraining                Function = "training"
	FunctionOutreach                Function = "outreach"
)

// Functions lists all known function tags in declaration order.
func Functions() []Function {
	return []Function{
		FunctionLawEnforcement, FunctionIntelligence, FunctionIncidentResponse,
		FunctionCyberForensics, FunctionThreatAnalysis,
		FunctionVulnerabilityAssessment, FunctionEmergencyManagement,
		FunctionResearch, FunctionTraining, FunctionOutreach,
	}
}

// IsValid returns true if the function is one of the known values.
func (f Function) IsValid() bool {
	for _, known := range Functions() {
		if f == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the function.
func (f Function) String() string { return string(f) }

// Hours describes when an entity is staffed.
type Hours string

const (
	HoursAlways        Hours = "24/7"
	HoursBusiness      Hours = "business_hours"
	HoursByAppointment Hours = "by_appointment"
	HoursVariable      Hours = "variable"
)

// IsValid returns true if the hours value is one of the known values.
func (h Hours) IsValid() bool {
	switch h {
	case HoursAlways, HoursBusiness, HoursByAppointment, HoursVariable:
		return true
	default:
		return false
	}
}

// String returns the string representation of the hours value.
func (h Hours) String() string { return string(h) }

// ParseHours parses a string into an Hours value.
// Returns an error if the string is not a known hours value.
func ParseHours(s string) (Hours, error) {
	h := Hours(s)
	if !h.IsValid() {
		return "", fmt.Errorf("invalid hours: %s", s)
	}
	return h, nil
}
