// Package domain defines the core business entities and errors for the
// contacts API: users, their contacts, and the addresses attached to a
// contact. Entities carry only data and basic self-validation; persistence
// and request-level validation live in the store and api packages.
package domain
