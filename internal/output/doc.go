// Package output serializes the pair collection when the user leaves with
// output.
//
// The collection is encoded completely before anything is written, so a
// failure never leaves a partial line on stdout. Both formats produce a single
// line with keys in sorted order:
//
//	json  {"host":"alpha","port":"80"}
//	yaml  {host: alpha, port: "80"}
//
// Optionally the same line is copied to the system clipboard. A clipboard
// failure is logged and otherwise ignored; stdout is the contract.
package output
