// Package commands defines the travelplan CLI.
//
// Commands
//
//   - render  Render a travel plan JSON file as a PDF
//   - split   Print a plan's cost breakdown divided across travelers
//
// Both commands read the same JSON a plan generator produces and run the
// same pipeline as the HTTP API, without a server or database.
package commands
