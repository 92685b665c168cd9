// Package monitor contains the polling loop and the terminal dashboard.
//
// A Poller runs in the background, fanning out one request per controller
// each interval and publishing the combined result into a Store as a single
// atomic replacement. The Bubble Tea Model reads from the Store on its own
// render tick, so a slow or dead controller never blocks a redraw.
package monitor
