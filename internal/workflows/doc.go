// Package workflows implements the command-level logic behind the sightkey
// CLI.
//
// Commands stay thin: they collect input and render output, while the
// workflow functions here combine the derivation core with configuration
// defaults and history logging, and return plain result structs the
// commands format. Doctor runs the environment health checks and reports
// them as structured CheckResults suitable for both human and JSON output.
package workflows
