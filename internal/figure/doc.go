// Package figure renders a survey comparison as a single row of panels,
// one per variable, with one step-outline histogram per dataset overlaid
// in each panel.
//
// Rendering is a straight pass over an already-binned model.Comparison:
// the package never touches catalog files and never recomputes counts, so
// a rendered figure always shows exactly the numbers the report and the
// run ledger carry.
//
// The output file is written atomically: the raster is encoded into a
// temporary file next to the destination and renamed into place on
// success, so a failed render never leaves a partial figure behind.
package figure
