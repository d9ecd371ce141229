// Package dataprocessing implements the ratchet computation pipeline over
// pipe-stress spreadsheet exports. It turns the loosely structured
// PresTempPipeID and PipeProperties sheets into typed tables, reshapes the
// repeated "Case N <field>" column groups into a long (row x case) form,
// reduces each runner row to its worst-case envelope, joins pipe material
// properties, and applies the closed-form ratcheting allowable formula.
//
// # Data Flow
//
//	Workbook → LoadSheet → ExtractRunners / ParseCases → CoerceReadings
//	         → ComputeEnvelopes → JoinProperties → CalculateAllowable
//	         → AggregateMaterials → FileReport
//
// # Error Handling
//
// Data-quality findings never abort a file. They are accumulated in the
// report's error log and flushed to the Errors sheet of the output
// workbook: warnings (non-numeric cells, duplicate columns, duplicate pipe
// ids, unmatched joins) leave nulls behind and processing continues, while
// structural errors (missing sheet, no case columns) stop the file and
// leave an error-log-only report.
package dataprocessing
