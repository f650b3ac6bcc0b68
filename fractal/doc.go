// Package fractal implements the Mandelbrot generation core: pixel to
// complex-plane mapping, escape-time iteration and escape color derivation.
//
// Everything in this package is a pure function of its arguments. Buffer
// ownership and view-state mutation live in the view package.
package fractal
