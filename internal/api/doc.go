// Package api contains the HTTP handlers of the contacts API. Handlers
// decode and validate requests, delegate to the service layer, and translate
// service errors into the uniform response envelope: successful payloads
// under "data", failures under "errors".
package api
