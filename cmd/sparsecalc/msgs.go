package main

// Command descriptions
const (
	MsgRootShort = "Add, subtract and multiply sparse integer matrices"
	MsgRootLong  = `sparsecalc reads two matrix files, applies one operation and writes the
result in the same format.

Matrix files look like:

  rows=3
  cols=3
  (0, 1, 5)
  (2, 2, -1)

Without a subcommand sparsecalc asks for the operation and both files
interactively and writes result_<operation>.txt.`
	MsgAddShort      = "Write left + right"
	MsgSubtractShort = "Write left - right"
	MsgMultiplyShort = "Write left x right"
	MsgVersionShort  = "Print version information"
)

// Flag descriptions
const (
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default ./sparsecalc.toml when present)"
	MsgFlagSorted    = "Write result entries in row-major order"
	MsgFlagStrict    = "Reject entries outside the declared rows/cols"
	MsgFlagAlgorithm = "Multiplication kernel: sparse or naive"
	MsgFlagOutput    = "Result file (default from output.dir and output.pattern)"
)

// Interactive prompt
const (
	MsgPromptTitle     = "Sparse Matrix Operation Tool"
	MsgPromptRule      = "==============================="
	MsgPromptOperation = "Choose operation (add/subtract/multiply): "
	MsgPromptFirst     = "Enter path to first matrix file: "
	MsgPromptSecond    = "Enter path to second matrix file: "
	MsgInvalidOp       = "Invalid operation"
)

// Results and errors
const (
	MsgResultSaved   = "Operation complete. Result saved to: %s"
	MsgVersionFormat = "sparsecalc version %s\n  commit: %s\n  built:  %s\n"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrNoInput    = "no input: %w"
)
