// Package format holds the instruction shared by the formatter engines.
// One engine implementation is selected at startup; see the provider
// subpackages.
package format

// Stage is the pipeline stage name reported in formatter errors.
const Stage = "format"

// Directive is the fixed system instruction sent ahead of the OCR text.
// It names the exact target schema; absent fields must come back as
// null so the record shape stays stable for clients.
const Directive = `Format the provided equipment label text as JSON with exactly these properties: device_type, name, color, brand, last_maintenance_date, contact_phone, contact_website, manufacturer. If no value is present for a property, return null for it. Don't wrap the output in markdown.`
