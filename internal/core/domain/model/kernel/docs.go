// Package kernel provides the shared identifier type used by storefront
// aggregates. A zero UUID is invalid; values come from NewUUID, UUIDFromString
// or UUIDFromBytes.
package kernel
