// Package store provides abstractions and implementations for data
// persistence. Store interfaces are defined here; the PostgreSQL
// implementations live in internal/platform/postgres.
//
// Ownership scoping is part of the store contracts: contact operations are
// keyed by (owner username, contact ID) and address operations by
// (contact ID, address ID), so a caller can never reach a row outside its
// ownership chain through these interfaces.
package store
