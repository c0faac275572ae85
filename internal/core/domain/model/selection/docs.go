// Package selection models the cascading province/district/ward choice made
// while a delivery form is open.
//
// A Selection only ever moves down the hierarchy one level at a time. Each
// choice that needs a child list to be fetched issues a Token; a list is
// accepted only for the latest token, so the most recent choice wins no
// matter in which order remote responses arrive.
package selection
