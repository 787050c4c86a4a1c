/*
Package observability provides Prometheus instrumentation for validators.

Metrics plugs into schema.WithObserver, so the schema package itself stays
free of any metrics dependency.
*/
package observability
