package demographics

import "strings"

// parseStructured emits the pre-structured field object in fixed display
// order. Values are trimmed but otherwise taken as-is: structured input
// comes from the typed pipeline stage and has not been through the damage
// the text cleaner repairs.
func parseStructured(fields Fields) []Item {
	items := make([]Item, 0, len(structuredFieldOrder))
	for _, entry := range structuredFieldOrder {
		value := strings.TrimSpace(fields.value(entry.field))
		if value == "" {
			continue
		}
		items = append(items, Item{Key: entry.label, Value: value})
	}
	return items
}

// value returns the string form of one upstream field. Roles collapse to a
// comma-separated list with blank entries dropped.
func (f Fields) value(field string) string {
	switch field {
	case "experience_level":
		return f.ExperienceLevel
	case "roles":
		roles := make([]string, 0, len(f.Roles))
		for _, role := range f.Roles {
			if role = strings.TrimSpace(role); role != "" {
				roles = append(roles, role)
			}
		}
		return strings.Join(roles, ", ")
	case "industry":
		return f.Industry
	case "location":
		return f.Location
	case "age_range":
		return f.AgeRange
	case "professional_context":
		return f.ProfessionalContext
	}
	return ""
}
