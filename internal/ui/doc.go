// Package ui contains the Fyne desktop window. It wires user input to the
// metadata fetcher and the job runner and renders their results. Background
// results are always applied on the Fyne thread through fyne.Do.
package ui
