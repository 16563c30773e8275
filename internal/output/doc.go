// Package output writes the finished prompt artifact.
//
// One artifact is produced per invocation: a single text file in the
// working directory (or an explicit override path), or stdout when the
// path is "-".
package output
