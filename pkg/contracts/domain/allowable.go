package domain

// AllowableInput is the record the ratcheting formula runs over. Every
// field is required; any nil produces a "Missing inputs" result.
type AllowableInput struct {
	PMax      *float64
	SyMin     *float64
	EMax      *float64
	AlphaRoom *float64
	C4        *float64
	DOut      *float64
	Thck      *float64
}

// AllowableResult is either a numeric allowable with an empty note, or a
// nil allowable with a human-readable failure reason. X and Y expose the
// intermediate values when they were reached before the failure.
type AllowableResult struct {
	Allowable *float64
	Note      string
	X         *float64
	Y         *float64
}

// OK reports whether the computation produced a numeric allowable. The
// empty note is the success sentinel.
func (r AllowableResult) OK() bool { return r.Note == "" }
