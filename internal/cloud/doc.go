// Package cloud provides the network translation backends. Every provider
// detects the source language itself and always translates to English.
package cloud
