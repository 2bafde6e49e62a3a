// Package rendering renders the solver export documents with text/template
// and the static portal pages with html/template, both from embedded files.
package rendering
