// Package translation provides the two-tier translator facade: a cloud
// backend first, then a local model parameterized by the detected source
// language. Every call yields a typed Result instead of a bare string.
package translation
