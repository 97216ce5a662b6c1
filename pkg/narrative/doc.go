// Package narrative ranks detected patterns into a bounded list of
// highlights for the downstream text-generation stage.
//
// Prioritize applies a fixed product schema: lower priority numbers win,
// candidates are collected rule by rule in schema order, and the final
// cut to MaxEntries happens only after the whole candidate list is
// sorted. Several low-priority rules admit candidates only while the
// list is still short, so collection order is part of the contract.
package narrative
