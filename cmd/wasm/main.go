//go:build js && wasm

// Command wasm exposes the sweep runner to the browser via WebAssembly.
// After loading, it registers a global JavaScript function:
//
//	runSweep(jsonString) -> jsonString
//
// The input and output are JSON-encoded SweepInput and SweepLog respectively,
// matching the same contract used by the CLI's sweep command.
package main

import (
	"syscall/js"

	"github.com/cxd309/aero-engine/internal/cornering"
	"github.com/cxd309/aero-engine/internal/sweep"
)

func main() {
	js.Global().Set("runSweep", js.FuncOf(runSweep))
	select {} // keep the WASM module alive until the page is closed
}

func runSweep(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	result, err := sweep.RunJSON(args[0].String(), cornering.New(cornering.DefaultConfig()))
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}
