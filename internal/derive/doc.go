// Package derive builds the per-field model of a record: how each field is
// read, which local identifier holds its tokenized value, and how it appears
// as a constructor parameter.
package derive
