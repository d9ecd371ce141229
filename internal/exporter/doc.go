// Package exporter renders computed ratchet reports into annotated xlsx
// workbooks: a per-node envelope sheet, a per-material envelope sheet and
// the run's error log. Both result sheets get a unit-label row inserted
// under the header, and each material receives a deterministic font color
// from a golden-ratio hue rotation, applied to its material-envelope row
// and to every per-node cell that supplied one of its winning extremes.
package exporter
