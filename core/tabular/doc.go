// Package tabular is the delimited-file boundary of the reconciler.
//
// Inputs are read completely into memory as a header plus ordered rows;
// outputs are written in one pass with a fixed header. Ragged rows are
// tolerated on read: missing cells read as empty strings.
package tabular
