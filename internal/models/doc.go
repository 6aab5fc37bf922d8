// Package models lists the models served by an OpenAI-compatible local
// server, putting translation-capable families first.
package models
