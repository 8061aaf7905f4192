// Package robot talks to the vacuum's local HTTP API and provides an
// in-process simulator implementing the same interface for demo mode.
package robot
