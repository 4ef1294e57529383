// Package billing holds the pure parts of the invoice computation engine.
//
// Nothing in this package performs I/O. Callers load contracts and
// attendance, convert instants to the billing time zone, and pass them in:
//
//   - period.go: expected sessions per month and billing period boundaries
//   - adjustment.go: unit price, absence deductions and carry-over
//   - extension.go: invoice slices over the extension chain and exhaustion
//   - buckets.go: in-progress / due-today / sent grouping and display periods
//
// Money is shopspring/decimal. Unit prices obtained by division are truncated
// to whole currency units before multiplying, so a deduction is always an
// exact multiple of the unit price.
package billing
