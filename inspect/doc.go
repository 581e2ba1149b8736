// Package inspect serves the aggregated provider configuration over HTTP.
//
// The endpoint is meant for operators and tooling: it shows what the
// container will be built from and lets the cache be reset without a restart.
//
//	GET  /config         merged configuration as YAML
//	GET  /config/{key}   one top-level key, e.g. /config/dependencies
//	GET  /providers      discovered identifiers and whether each resolves
//	POST /reload         clear the cache and load again
//
// NewModule wires the server into an Fx application next to the module from
// provider.NewModule or provider.NewManifestModule.
package inspect
