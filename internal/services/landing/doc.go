// Package landing serves the FlaskHub marketing page over HTTP and exports it
// as a static site.
//
// The page is rendered from compiled-in content collections on every request.
// Requests share no mutable state, so the handler is safe for concurrent use
// without locking.
package landing
