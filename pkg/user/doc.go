// Package user defines the externally supplied user records processed by the
// ingestion pipeline.
//
// Only name and dateOfBirth are interpreted. Every other field of the source
// document is preserved: a Record remembers the exact JSON object it was
// decoded from and re-emits it verbatim, so a collection can be reported back
// unmodified and in its original order.
package user
