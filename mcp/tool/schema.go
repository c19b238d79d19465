package tool

import (
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Property describes one JSON-schema property.
type Property = map[string]interface{}

// Schema is an object schema: named properties plus the required subset.
type Schema struct {
	Properties map[string]Property
	Required   []string
}

// Input renders the MCP tool input schema.
func (s Schema) Input() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type:       "object",
		Properties: s.properties(),
		Required:   s.Required,
	}
}

// Document renders a standalone JSON-schema document used for argument
// validation. Unknown arguments are rejected.
func (s Schema) Document() map[string]interface{} {
	doc := map[string]interface{}{
		"type":                 "object",
		"properties":           s.properties(),
		"additionalProperties": false,
	}
	if len(s.Required) > 0 {
		required := make([]interface{}, len(s.Required))
		for i, name := range s.Required {
			required[i] = name
		}
		doc["required"] = required
	}
	return doc
}

func (s Schema) properties() map[string]map[string]interface{} {
	ret := make(map[string]map[string]interface{}, len(s.Properties))
	for name, prop := range s.Properties {
		ret[name] = prop
	}
	return ret
}

// envelope wraps the data schema of a tool into the response envelope.
func envelope(data Schema) *mcpschema.ToolOutputSchema {
	dataProp := Object("Operation result")
	if len(data.Properties) > 0 {
		dataProp["properties"] = data.properties()
	}
	return &mcpschema.ToolOutputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"success":    Boolean("Whether the call succeeded"),
			"message":    String("Human readable summary"),
			"data":       dataProp,
			"error":      String("Error message when success is false"),
			"error_type": Enum("Error category when success is false", errorTypes...),
			"next_steps": Array("Suggested follow-up calls", String("")),
		},
		Required: []string{"success"},
	}
}

// String returns a string property.
func String(description string) Property {
	return describe(Property{"type": "string"}, description)
}

// ID returns a non-empty string property used for identifiers.
func ID(description string) Property {
	return describe(Property{"type": "string", "minLength": 1}, description)
}

// Integer returns an integer property bounded by min and max.
func Integer(description string, min, max int) Property {
	return describe(Property{"type": "integer", "minimum": min, "maximum": max}, description)
}

// Boolean returns a boolean property.
func Boolean(description string) Property {
	return describe(Property{"type": "boolean"}, description)
}

// Object returns a free-form object property.
func Object(description string) Property {
	return describe(Property{"type": "object"}, description)
}

// Array returns an array property of items.
func Array(description string, items Property) Property {
	return describe(Property{"type": "array", "items": items}, description)
}

// Enum returns a string property restricted to values.
func Enum(description string, values ...string) Property {
	enum := make([]interface{}, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return describe(Property{"type": "string", "enum": enum}, description)
}

func describe(prop Property, description string) Property {
	if description != "" {
		prop["description"] = description
	}
	return prop
}
