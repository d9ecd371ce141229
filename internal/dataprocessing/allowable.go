package dataprocessing

import (
	"ratchetcli/pkg/contracts/domain"
)

// Fixed constants of the ratcheting allowable formula. The branch points
// and scale factors are part of the published formula, not tunables.
const (
	ratchetXLow    = 0.5
	ratchetXHigh   = 1.0
	ratchetYFactor = 4.0
	ratchetDenom   = 0.7
	modulusScale   = 1e6
	expansionScale = 1e-6
)

// CalculateAllowable applies the closed-form ratcheting formula to one
// record. It is pure: the result either carries a numeric allowable with an
// empty note, or no value and the reason it could not be computed. X and Y
// report the intermediates reached before a failure.
func CalculateAllowable(in domain.AllowableInput) domain.AllowableResult {
	required := []*float64{in.PMax, in.SyMin, in.EMax, in.AlphaRoom, in.C4, in.DOut, in.Thck}
	for _, v := range required {
		if v == nil {
			return domain.AllowableResult{Note: "Missing inputs"}
		}
	}
	if *in.Thck == 0 || *in.SyMin == 0 {
		return domain.AllowableResult{Note: "Invalid Sy_min or thickness"}
	}

	x := (*in.PMax * *in.DOut) / (2 * *in.Thck * *in.SyMin)
	if x == 0 {
		return domain.AllowableResult{Note: "Invalid x (division by zero)", X: domain.Float(x)}
	}

	var y float64
	switch {
	case x > 0 && x <= ratchetXLow:
		y = 1 / x
	case x > ratchetXLow && x <= ratchetXHigh:
		y = ratchetYFactor * (1 - x)
	default:
		return domain.AllowableResult{Note: "x out of range", X: domain.Float(x)}
	}

	if *in.EMax == 0 || *in.AlphaRoom == 0 {
		return domain.AllowableResult{
			Note: "Invalid E_max or alpha",
			X:    domain.Float(x),
			Y:    domain.Float(y),
		}
	}

	eActual := *in.EMax * modulusScale
	alphaActual := *in.AlphaRoom * expansionScale
	allowable := *in.C4 * y * *in.SyMin / (ratchetDenom * eActual * alphaActual)

	return domain.AllowableResult{
		Allowable: domain.Float(allowable),
		X:         domain.Float(x),
		Y:         domain.Float(y),
	}
}

// NodeAllowableInput assembles the formula inputs for one per-node result
// from its envelope and joined property record.
func NodeAllowableInput(node domain.NodeResult) domain.AllowableInput {
	in := domain.AllowableInput{
		PMax:  node.Envelope.PMax,
		SyMin: node.Envelope.SyMin,
		EMax:  node.Envelope.EMax,
	}
	if node.Property != nil {
		in.AlphaRoom = node.Property.AlphaRoom
		in.C4 = node.Property.C4
		in.DOut = node.Property.DOut
		in.Thck = node.Property.Thck
	}
	return in
}
