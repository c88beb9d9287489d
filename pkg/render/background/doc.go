// Package background procedurally generates the raster layers that card
// renderers stack behind their text: color gradients, geometric tessellations
// and textures, and blurred lighting effects.
//
// Every generator is a pure function of its parameters and returns a freshly
// allocated buffer at the requested size. Randomized generators take an
// explicit seed; pass 0 for time-derived, non-reproducible output (the
// randomness is cosmetic only). No generator touches global state, so
// independent render calls may run concurrently.
//
// All blurs go through a separable two-pass Gaussian filter, keeping cost
// linear in the kernel radius rather than quadratic.
package background
