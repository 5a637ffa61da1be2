// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains the synthetic record generator used by the
// /fake_* endpoints (see lib/fake).
package lib
