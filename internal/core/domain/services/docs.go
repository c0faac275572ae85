// Package services provides domain services of the storefront that do not
// belong to a single aggregate.
//
// The package includes:
//   - LocationFetcher: reads provinces, districts and wards and orders them
//     for display in the caller's locale
//   - SelectionCascade: picks a province from the fetched candidates and moves
//     a Selection to it
package services
