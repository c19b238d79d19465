// Package conv holds the small generic helpers used to move tool arguments,
// n8n payloads and optional fields between their map and struct forms.
package conv
