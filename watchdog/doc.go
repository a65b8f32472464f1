// Package watchdog implements a bounded-deadline scheduler: a single
// process-wide interval timer drives a pending list kept in
// non-decreasing deadline order. Clients schedule a deadline with a
// handler (set an AbandonToken, or invoke a callback); on expiry the
// scheduler fires every event whose deadline has elapsed and reprograms
// the timer for the new head.
//
// A Scheduler is not a singleton: callers own one explicitly, but
// nothing stops a process from keeping exactly one around.
//
// The time comparison used throughout is x.Microseconds() ==
// y.Microseconds(); a self-comparison typo here is an easy trap and is
// guarded against explicitly in tests.
package watchdog
