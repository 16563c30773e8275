// Package redact removes secret-shaped substrings from diff text before it
// is written into a prompt artifact.
//
// Three rules apply in fixed order: key/value assignments under common
// secret-bearing key names collapse to <key>=***, PEM private-key blocks
// collapse to a fixed placeholder block, and JSON "clientSecret" fields
// collapse to "***". Detection is regex-based and deliberately
// conservative; it can both under- and over-match, which is an accepted
// limitation of pattern-level scrubbing.
package redact
