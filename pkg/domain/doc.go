// Package domain contains the core domain entities and types used by the
// scan scheduler. These types represent the radio-level concepts (scan
// requests, channel sets, raw results and hotlist entries) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
