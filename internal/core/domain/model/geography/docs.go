// Package geography models the three-level administrative hierarchy used for
// delivery addresses: Province > District > Ward.
//
// Codes are lookup keys issued by the external geography service. They are
// unique among siblings and only drive the next fetch; what a delivery record
// keeps is the human-readable Name.
package geography
