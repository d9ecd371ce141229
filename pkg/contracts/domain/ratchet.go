package domain

// Canonical case field identifiers. Case column headers in the
// PresTempPipeID sheet are mapped onto these keys by the case parser.
const (
	FieldPressure    = "pres_psi"
	FieldTemperature = "temp_deg_f"
	FieldExpansion   = "expan_in_100ft"
	FieldHotModulus  = "hot_mod_e6_psi"
	FieldYield       = "yield_sy_psi"
	FieldAllowSM     = "allow_sm_psi"
	FieldDeltaT1     = "delta_t1_deg_f"
	FieldDeltaT2     = "delta_t2_deg_f"
)

// CaseNumericFields lists the canonical case fields that are coerced to
// numeric values after the wide-to-long reshape.
var CaseNumericFields = []string{
	FieldPressure,
	FieldTemperature,
	FieldExpansion,
	FieldHotModulus,
	FieldYield,
	FieldAllowSM,
	FieldDeltaT1,
	FieldDeltaT2,
}

// RunnerRow is one physical pipe segment between two nodes as it appears in
// the PresTempPipeID sheet. RowID is the zero-based position of the row in
// the source data block and is the row's identity for the whole run.
// Values are kept as raw cell text; only case readings and pipe properties
// are numeric.
type RunnerRow struct {
	RowID     int
	From      string
	To        string
	Material  string
	PipeID    string
	NominalIn string
}

// CaseReading is one (runner row x load case) observation from the long
// table. Raw holds the original cell text per canonical field, Values the
// coerced numerics (nil means blank or unparseable). Extra carries
// case fields that matched no alias and were slugged from the header text.
type CaseReading struct {
	RowID      int
	CaseNumber int
	Raw        map[string]string
	Values     map[string]*float64
	Extra      map[string]string
}

// Value returns the coerced numeric for a canonical field, nil if missing.
func (r CaseReading) Value(field string) *float64 {
	return r.Values[field]
}

// PipeProperty is the material property record for one distinct pipe id.
// Key is the normalized (trimmed, uppercased) pipe id used for joining.
type PipeProperty struct {
	Key          string
	PipeID       string
	PipeMaterial string
	DOut         *float64
	Thck         *float64
	AlphaRoom    *float64
	C4           *float64
}

// Float returns a pointer to v. Convenience for building optional numerics.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
