// Package detect identifies the language of a text with a pretrained,
// locally loaded classifier and maps the classifier's label to the short
// language code expected by the local translation model.
package detect
