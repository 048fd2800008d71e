// Package fx holds the page's small effects: counters, reveal on scroll,
// smooth scrolling, ripples, card glow, ambient particles, the background hue
// shift, the entry gate and the Konami easter egg.
//
// Nothing here starts goroutines or timers. Every effect is driven by the
// host calling Advance with the frame's elapsed time, and by input handlers.
package fx
