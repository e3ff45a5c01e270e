// Package flow contains pipeline plumbing for running asynchronous
// unary operations over channels of outcomes: channel sources and
// sinks, worker configuration via context, and the locomotive loop
// that drives stages with controlled concurrency.
//
// Common usage:
// - Source/SourceValues: feed values as successful outcomes
// - Pump: run a unary operation with a fixed number of lines
// - Finalize: collapse outcomes into plain values at the end
// - Collect/FirstOrDefault: drain the terminal channel
package flow
