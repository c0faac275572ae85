// Package delivery holds the delivery-info record a buyer submits and the
// binder that validates it.
//
// The record keeps province, district and ward as names. Two form variants
// exist: Checkout requires a payment type, AddAddress omits it and the result
// goes to the buyer's address book instead of an order.
package delivery
