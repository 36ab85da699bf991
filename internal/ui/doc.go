// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (commands,
// errors, user values, the generated password) that render appropriately
// based on terminal capabilities. When colors are available, content is
// colorized. When NO_COLOR is set or the terminal doesn't support colors,
// text-based decorations (backticks, quotes) are used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Code.Sprint("sightkey derive")        // Commands and code
//	ui.Success.Sprint("✓")                    // Success indicators
//	ui.Error.Sprint("✗")                      // Error indicators
//	ui.Warning.Sprint("⚠")                    // Warnings
//	ui.Info.Sprint("→")                       // Informational hints
//	ui.Highlight.Sprint("github.com")         // User values
//	ui.Password.Sprint(password)              // The derived password
//	ui.Muted.Sprint("optional")               // De-emphasized text
//
// ui.Mask replaces a secret value with bullets of the same length, for the
// non-secret echo of masked color/pattern entry.
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
//
// When colors are disabled, formatters apply text decorations:
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration (self-evident from context)
package ui
