// Package server exposes the locator over HTTP.
//
// Endpoints:
//
//	GET /health       liveness plus indexed row count
//	GET /search       q (required), limit (1-20, default from config)
//	GET /debug/index  index diagnostics: size, dropped rows, fingerprint
//
// The package owns routing, CORS, parameter decoding, request logging and
// panic recovery; query semantics live entirely in the locate facade.
package server
