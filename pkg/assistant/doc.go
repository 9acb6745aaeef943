// assistant embeds mai's email triage and response loop in other
// programs.
//
// An assistant takes one email at a time, classifies it as
// respond/ignore/notify, and on respond drives a tool-calling loop
// until the model marks the thread done. Runs checkpoint to a local
// store, so a run which suspends on a question to the human can be
// resumed later, in another process if need be.
//
// This package streamlines the creation of such assistants
package assistant
