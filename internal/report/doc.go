// Package report provides textual summaries of a survey comparison.
//
// The markdown writer renders the same bin counts the figure is drawn
// from, as GitHub-flavored markdown tables: one section per variable, one
// column per dataset. It exists so a comparison can be reviewed, diffed,
// and pasted into notes without opening the image.
//
// Writers implement the Writer interface so output formats can be added
// without touching the model types.
package report
