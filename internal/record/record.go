// Package record parses formatter output into the fixed equipment
// schema. The language model is prompted for this layout but nothing
// upstream guarantees it, so parsing is tolerant and failure is a
// degradation, not an error: callers fall back to the raw text.
package record

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"nameplate-relay/internal/util"
)

// Record is the structured equipment metadata document. Fields absent
// in the source text stay nil and serialize as JSON null, never omitted.
type Record struct {
	DeviceType          *string `json:"device_type"`
	Name                *string `json:"name"`
	Color               *string `json:"color"`
	Brand               *string `json:"brand"`
	LastMaintenanceDate *string `json:"last_maintenance_date"`
	ContactPhone        *string `json:"contact_phone"`
	ContactWebsite      *string `json:"contact_website"`
	Manufacturer        *string `json:"manufacturer"`
}

// Parse attempts to read raw model output as a record. It accepts both
// YAML and JSON (the prompt has asked for either across revisions) and
// tolerates code fences and key spelling variants ("device type",
// "device_type", "deviceType"). Returns ok=false when the output is not
// a mapping or matches none of the schema fields.
func Parse(raw string) (Record, bool) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(util.StripCodeFences(raw)), &doc); err != nil || len(doc) == 0 {
		return Record{}, false
	}

	fields := map[string]any{}
	for k, v := range doc {
		fields[normalizeKey(k)] = v
	}

	var r Record
	matched := 0
	for key, dst := range map[string]**string{
		"device type":           &r.DeviceType,
		"name":                  &r.Name,
		"color":                 &r.Color,
		"brand":                 &r.Brand,
		"last maintenance date": &r.LastMaintenanceDate,
		"contact phone":         &r.ContactPhone,
		"contact website":       &r.ContactWebsite,
		"manufacturer":          &r.Manufacturer,
	} {
		v, ok := fields[key]
		if !ok {
			continue
		}
		matched++
		*dst = stringValue(v)
	}
	if matched == 0 {
		return Record{}, false
	}
	return r, true
}

func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.ReplaceAll(k, "_", " ")
	k = strings.ReplaceAll(k, "-", " ")
	// camelCase keys collapse once lower-cased ("devicetype"); map the
	// known ones back to their spaced form.
	switch k {
	case "devicetype":
		return "device type"
	case "lastmaintenancedate":
		return "last maintenance date"
	case "contactphone":
		return "contact phone"
	case "contactwebsite":
		return "contact website"
	}
	return strings.Join(strings.Fields(k), " ")
}

// stringValue renders a scalar as *string, keeping null as nil. Models
// occasionally emit numbers (phone digits, dates); those are kept as
// their textual form rather than rejected.
func stringValue(v any) *string {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" || strings.EqualFold(t, "null") {
			return nil
		}
		s := t
		return &s
	default:
		s := fmt.Sprint(t)
		return &s
	}
}
