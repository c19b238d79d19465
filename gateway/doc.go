// Package gateway sits between the tool registry and an n8n.Backend. Each
// gateway validates its typed input, delegates to whichever backend the
// process selected at startup and shapes the answer into a Result.
//
// Gateways never invent identifiers: a missing or blank id is an
// n8n.InvalidArgumentError raised before the backend is touched.
package gateway
