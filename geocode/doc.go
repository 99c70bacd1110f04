// Package geocode resolves coordinates to street addresses through a
// Nominatim-compatible reverse-geocoding endpoint. It enriches vehicle
// position output; a failed lookup never blocks the caller from showing
// the raw coordinates.
package geocode
