package models

// InstrumentType groups instruments (Piano, Strings, ...). Type names are
// unique.
type InstrumentType struct {
	ID          string  `json:"type_id"`
	TypeName    string  `json:"type_name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// Instrument condition values are free-form in practice; status is
// constrained to InstrumentStatuses.
type Instrument struct {
	ID             string  `json:"instrument_id"`
	BranchID       string  `json:"branch_id" validate:"required"`
	InstrumentName string  `json:"instrument_name" validate:"required"`
	TypeID         string  `json:"type_id" validate:"required"`
	SerialNumber   *string `json:"serial_number,omitempty"`
	Condition      string  `json:"condition"`
	Status         string  `json:"status"`

	BranchName *string `json:"branch_name,omitempty"`
	TypeName   *string `json:"type_name,omitempty"`
}

// InstrumentStatuses are the accepted values for Instrument.Status.
var InstrumentStatuses = []string{"Active", "Available", "In Use", "Under Repair", "Inactive"}

// ValidInstrumentStatus reports whether s is one of InstrumentStatuses.
func ValidInstrumentStatus(s string) bool {
	for _, v := range InstrumentStatuses {
		if s == v {
			return true
		}
	}
	return false
}
