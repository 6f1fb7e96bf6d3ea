// Package event provides a minimal synchronous observer mechanism.
//
// An Emitter delivers values to subscribers in registration order, on the
// goroutine that calls Emit, before Emit returns. Handlers may subscribe or
// cancel subscriptions from inside a delivery; changes take effect for the
// next Emit.
//
// Emitters are not internally synchronized. Callers that share an emitter
// across goroutines must serialize access externally.
package event
