// Package tracker provides the storage and currency core of a personal
// finance tracker. It is designed to be local-first: all state lives in
// a small key-value substrate under the user's control, with no server
// and no sync.
//
// The core functionalities include:
//   - Transaction Store: recording income and expense transactions as a
//     single whole-document collection, with create, update, delete and
//     list operations and legacy-record normalization on read.
//   - Settings Store: user preferences (name, theme, display currency,
//     monthly budget, exchange rates) read through merge-on-read
//     defaults so the schema can evolve without data migrations.
//   - Currency Engine: conversion between currencies through a single
//     base unit, and display formatting keyed to each currency's
//     conventions. Amounts are persisted in the base unit only; a
//     currency switch is a settings change, not a data rewrite.
//   - Data Portability: exporting the full state to a human-readable
//     snapshot document, restoring it with validate-then-commit
//     semantics, and wiping back to first-run state.
//
// This package serves as the foundational logic for the `sft`
// command-line tool; the command layer holds all input validation and
// rendering, the core holds the data semantics.
package tracker
