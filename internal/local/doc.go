// Package local provides the locally hosted translation model backends.
// Callers pass the source language on every call and the target is always
// English, so a Model handle holds no per-call state and may be shared.
package local
