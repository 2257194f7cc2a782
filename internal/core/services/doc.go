// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services depend only on domain, ports, the similarity engine and
// settings validation; every adapter is injected.
package services
