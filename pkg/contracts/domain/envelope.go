package domain

// Envelope holds the worst-case scalars for one runner row across all of
// its load cases, each with the case number that produced it. A nil value
// means every reading for that metric was missing; the case number is nil
// with it so that "missing input" propagates instead of a phantom zero.
type Envelope struct {
	RowID       int
	PMax        *float64
	PMaxCase    *int
	SyMin       *float64
	SyMinCase   *int
	DeltaT1Max  *float64
	DeltaT1Case *int
	EMax        *float64
	EMaxCase    *int
}

// NodeResult is one fully computed per-node output row: the runner row, its
// envelope, the joined pipe property record (nil when the join found no
// match) and the allowable computation over the combined inputs.
type NodeResult struct {
	Runner    RunnerRow
	Envelope  Envelope
	Property  *PipeProperty
	Allowable AllowableResult
}

// Extreme is one conservative per-material value together with its
// provenance: the RowID of the node that supplied it and the node pair
// rendered as "from->to".
type Extreme struct {
	Value *float64
	RowID *int
	Nodes string
}

// MaterialEnvelope is the worst-of-worst record for one material label,
// built by taking the most conservative value of each physical quantity
// across every node of that material, then re-running the allowable
// computation on the synthesized record.
type MaterialEnvelope struct {
	Material   string
	PMax       Extreme
	SyMin      Extreme
	DeltaT1Max Extreme
	EMax       Extreme
	DOut       Extreme
	Thck       Extreme
	AlphaRoom  Extreme
	C4         Extreme
	Allowable  AllowableResult
}

// FileReport is everything produced for a single input workbook.
// Structural reports that a structural error (missing sheet, no case
// columns, unreadable file) stopped computation; the report then carries
// only the error log and the output workbook contains only the Errors
// sheet.
type FileReport struct {
	File       string
	Nodes      []NodeResult
	Materials  []MaterialEnvelope
	Errors     *ErrorLog
	Structural bool
}
