// Package taskgroup provides a small structured-concurrency helper.
// A Group owns the goroutines it spawns, provides a join point (Wait),
// and propagates cancellation and errors predictably according to a
// policy. The concurrency example uses it alongside errgroup and bare
// goroutines to contrast the three styles.
package taskgroup
