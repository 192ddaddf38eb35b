// Package panel holds the static layout constants for the writing-assistant
// panel. The values are sizing and naming only; the panel itself is rendered
// by the host UI.
package panel
