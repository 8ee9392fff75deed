// Package reportengine holds the records and shared value types of the
// composite report engine: AMC contracts, projects, sub-report documents,
// template settings, and the error kinds the composer surfaces.
//
// Rendering lives in the subpackages (theme, style, design, decor, flow,
// section, annex, subreport, compose); persistence lives in docstore.
package reportengine

// CustomerInfo identifies the customer a contract serves. Missing fields
// resolve against the linked Project.
type CustomerInfo struct {
	CustomerName  Text `json:"customer_name"`
	SiteLocation  Text `json:"site_location"`
	ContactPerson Text `json:"contact_person"`
	ContactNumber Text `json:"contact_number"`
	Email         Text `json:"email"`
}

// ServiceProvider identifies the company delivering the contract. Missing
// fields resolve against the theme snapshot.
type ServiceProvider struct {
	CompanyName Text `json:"company_name"`
	Address     Text `json:"address"`
	Contact     Text `json:"contact"`
	GSTIN       Text `json:"gstin"`
}

// ContractDetails carries the commercial terms of an AMC.
type ContractDetails struct {
	ContractNo        Text `json:"contract_no"`
	StartDate         Text `json:"start_date"`
	EndDate           Text `json:"end_date"`
	ScopeOfWork       Text `json:"scope_of_work"`
	SpecialConditions Text `json:"special_conditions"`
}

// EquipmentItem is one entry of the contract's equipment list. The list
// order defines the canonical sort order for linked test reports.
type EquipmentItem struct {
	EquipmentType    Text `json:"equipment_type"`
	EquipmentName    Text `json:"equipment_name"`
	Quantity         int  `json:"quantity"`
	ServiceFrequency Text `json:"service_frequency"`
	LastServiceDate  Text `json:"last_service_date"`
	NextServiceDate  Text `json:"next_service_date"`
}

// SpareConsumable is a spare part or consumable, either contract-level or
// recorded against a single visit.
type SpareConsumable struct {
	Description Text `json:"description"`
	PartNo      Text `json:"part_no"`
	Quantity    Text `json:"quantity"`
	Unit        Text `json:"unit"`
	Remarks     Text `json:"remarks"`
}

// ServiceVisit is one scheduled or completed visit under the contract,
// with links to the reports produced during it.
type ServiceVisit struct {
	VisitDate         Text              `json:"visit_date"`
	VisitType         Text              `json:"visit_type"`
	Status            Text              `json:"status"`
	TechnicianName    Text              `json:"technician_name"`
	EquipmentServiced []string          `json:"equipment_serviced"`
	Remarks           Text              `json:"remarks"`
	TestReportIDs     []string          `json:"test_report_ids"`
	IRReportIDs       []string          `json:"ir_thermography_report_ids"`
	ServiceReportIDs  []string          `json:"service_report_ids"`
	SparePartsUsed    []SpareConsumable `json:"spare_parts_used"`
}

// StatutoryDocument is an uploaded statutory attachment. FileURL, when set,
// points at a server-local file under the uploads directory.
type StatutoryDocument struct {
	Type        Text `json:"type"`
	Name        Text `json:"name"`
	ReferenceNo Text `json:"reference_no"`
	FileURL     Text `json:"file_url"`
}

// AMC is an Annual Maintenance Contract record, the input to the composite
// report build.
type AMC struct {
	ID                 string              `json:"id"`
	AMCNo              Text                `json:"amc_no"`
	ProjectID          Text                `json:"project_id"`
	CustomerInfo       *CustomerInfo       `json:"customer_info,omitempty"`
	ServiceProvider    *ServiceProvider    `json:"service_provider,omitempty"`
	ContractDetails    ContractDetails     `json:"contract_details"`
	EquipmentList      []EquipmentItem     `json:"equipment_list"`
	ServiceVisits      []ServiceVisit      `json:"service_visits"`
	SpareConsumables   []SpareConsumable   `json:"spare_consumables"`
	StatutoryDocuments []StatutoryDocument `json:"statutory_documents"`
	Status             Text                `json:"status"`
}

// Project provides customer fallbacks for contracts that omit customer_info.
type Project struct {
	ID               string `json:"id"`
	PIDNo            Text   `json:"pid_no"`
	ProjectName      Text   `json:"project_name"`
	Client           Text   `json:"client"`
	Location         Text   `json:"location"`
	EngineerInCharge Text   `json:"engineer_in_charge"`
	PONumber         Text   `json:"po_number"`
}

// TestReport is an equipment test report document (transformer, ACB, relay,
// battery and similar), produced by a sibling engine.
type TestReport struct {
	ID            string      `json:"id"`
	ReportNo      Text        `json:"report_no"`
	ProjectID     Text        `json:"project_id"`
	EquipmentType Text        `json:"equipment_type"`
	EquipmentName Text        `json:"equipment_name"`
	TestDate      Text        `json:"test_date"`
	TestedBy      Text        `json:"tested_by"`
	Result        Text        `json:"result"`
	Parameters    []TestParam `json:"parameters"`
	Remarks       Text        `json:"remarks"`
}

// TestParam is one measured parameter row of a test report.
type TestParam struct {
	Name     Text `json:"name"`
	Unit     Text `json:"unit"`
	Expected Text `json:"expected"`
	Measured Text `json:"measured"`
	Status   Text `json:"status"`
}

// IRItem is one inspection point of an IR thermography survey.
type IRItem struct {
	Location     Text    `json:"location"`
	Equipment    Text    `json:"equipment"`
	Phase        Text    `json:"phase"`
	MaxTempC     float64 `json:"max_temp_c"`
	RefTempC     float64 `json:"ref_temp_c"`
	Severity     Text    `json:"severity"`
	Observation  Text    `json:"observation"`
	Recommended  Text    `json:"recommended_action"`
}

// IRReport is an infrared thermography survey report document.
type IRReport struct {
	ID             string           `json:"id"`
	ReportNo       Text             `json:"report_no"`
	ProjectID      Text             `json:"project_id"`
	SiteLocation   Text             `json:"site_location"`
	InspectionDate Text             `json:"inspection_date"`
	InspectedBy    Text             `json:"inspected_by"`
	Items          []IRItem         `json:"items"`
	Risk           RiskDistribution `json:"risk_distribution"`
	Remarks        Text             `json:"remarks"`
}

// ServiceRequest is a service call record linked to a visit.
type ServiceRequest struct {
	ID            string `json:"id"`
	RequestNo     Text   `json:"request_no"`
	ProjectID     Text   `json:"project_id"`
	RequestDate   Text   `json:"request_date"`
	Equipment     Text   `json:"equipment"`
	Description   Text   `json:"description"`
	ActionTaken   Text   `json:"action_taken"`
	AttendedBy    Text   `json:"attended_by"`
	Status        Text   `json:"status"`
	CompletedDate Text   `json:"completed_date"`
}

// ReportDesignSetting selects a decorative cover design for one report type.
type ReportDesignSetting struct {
	DesignID    Text `json:"design_id"`
	DesignColor Text `json:"design_color"`
}

// Settings is the template-settings document read once per build.
type Settings struct {
	CompanyName    Text                           `json:"company_name"`
	AddressLines   []string                       `json:"address_lines"`
	Phone          Text                           `json:"phone"`
	Email          Text                           `json:"email"`
	Website        Text                           `json:"website"`
	Certifications Text                           `json:"certifications"`
	LogoPath       Text                           `json:"logo_path"`
	PrimaryColor   Text                           `json:"primary_color"`
	ReportDesigns  map[string]ReportDesignSetting `json:"report_designs"`
	CoverPage      *bool                          `json:"cover_page,omitempty"`
	BackCover      *bool                          `json:"back_cover,omitempty"`
	HeaderFooter   *bool                          `json:"header_footer,omitempty"`
}
