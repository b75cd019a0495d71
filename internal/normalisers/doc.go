// Package normalisers provides implementations of the Normaliser interface.
// A normaliser turns one raw tag string into its canonical form before
// variations are generated.
package normalisers
