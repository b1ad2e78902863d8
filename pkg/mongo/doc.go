// Package mongo creates configured MongoDB clients with connection retries
// and exposes a Ping-based health check for readiness probes.
package mongo
