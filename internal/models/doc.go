// Package models defines the domain types for quicksplit.
//
// # Models
//
//   - Participant: one person in a split, with the inputs every mode may use
//   - SplitMode: the allocation strategy (equal, weighted shares, explicit amounts)
//   - SplitRequest: a validated snapshot handed to the calculator
//   - Share / Allocation: the computed result, one share per participant
//
// # Design Principles
//
// 1. **One record per person**: a participant's name, weight and amount live
//    together in a single struct; there are no parallel slices to keep in sync
// 2. **Decimal money**: totals, weights and amounts are shopspring decimals so
//    rounding happens on the digits the user typed, not on binary floats
// 3. **No identity**: an Allocation is recomputed on every split and never
//    updated in place
package models
