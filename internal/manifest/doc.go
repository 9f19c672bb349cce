// Package manifest handles parsing and validation of the launcher manifest:
// the embedded document that holds the usage header, the meaning of the six
// forwarded demo parameters, the planner id table, the advisory note printed
// under the catalog and the startup banner. It is validated against an
// embedded JSON Schema before use.
package manifest
