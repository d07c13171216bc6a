// Package service implements the business operations of the contacts API:
// user registration and sessions, contact CRUD with search, and address CRUD
// nested under a contact. Services receive explicit input structs, re-verify
// the ownership chain on every call, and return domain entities or sentinel
// errors from the domain and store packages.
package service
