// Package controller contains HTTP middlewares used by the API server.
//
//   - WithCORS answers preflight requests and sets CORS headers so browser
//     clients can invoke callable functions.
//   - WithLogger attaches a request-scoped logger and request ID to the
//     context and writes an access log line.
package controller
