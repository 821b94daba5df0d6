// Package api serves the machine catalog over HTTP.
//
// Routes:
//
//	GET  /machines                    list catalog entries
//	GET  /machines/{name}             states, transitions and samples
//	POST /machines/{name}/run         run one input, optionally minimized or traced
//	GET  /machines/{name}/diagram     render as svg, png, jpg, dot or mermaid
//	GET  /healthz                     liveness and build info
//	GET  /metrics                     Prometheus exposition
//
// Each request builds its own automaton from the catalog, so handlers share
// no mutable state beyond the diagram cache.
//
// Errors are JSON objects {"error": "...", "code": "..."}. Unknown machines
// are 404; invalid symbols, bad formats and malformed bodies are 400.
package api
