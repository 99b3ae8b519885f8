// Package controller holds the client's view state machine.
//
// A [Controller] owns one [State] value. User actions arrive as [Intent]
// values and are routed through a dispatch table to handlers that mutate the
// state synchronously. Handlers that need the network return a [Cmd]; the
// event loop runs it off the loop and feeds the resulting [Result] back
// through [Controller.Apply], which mutates the state in one step.
//
// Views: Login, Items, Detail and Rankings. Any API call that comes back
// Unauthenticated sends the controller back to Login with a "Session
// expired" notice, whatever the call was for.
//
// The package knows nothing about rendering. The terminal UI reads
// [Controller.State] and draws it.
package controller
