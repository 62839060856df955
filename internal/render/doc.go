// Package render formats decoded accounts for output and filters them by
// issuer or name. Formats: a numbered text block per account, indented
// JSON, YAML, and one otpauth:// URI per line.
package render
