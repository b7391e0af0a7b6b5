// Package app contains the application services: the quantity evaluator and
// the unit catalog. Services depend on the port interfaces for units and
// constants, not on the concrete registries.
//
// Application layer responsibilities:
//   - Run evaluations through the Executor's validate, resolve, verify,
//     record and respond steps
//   - Fan listings of several unit systems out over errgroup
//   - Write the plain-text output of the force and listing commands
//
// What does NOT belong here:
//   - HTTP or CLI specifics (that's adapters)
//   - Unit algebra and constant values (that's units and constants)
package app
