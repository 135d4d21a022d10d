package logger

// Standard field names for consistent structured logging across staticproof.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldCommand   = "command"

	// Targets
	FieldPackage = "package"
	FieldPattern = "pattern"
	FieldFile    = "file"
	FieldLine    = "line"

	// Assertions
	FieldAssertion = "assertion"
	FieldOperand   = "operand"
	FieldKind      = "kind"
	FieldSeverity  = "severity"

	// Sizing target
	FieldGOOS     = "goos"
	FieldGOARCH   = "goarch"
	FieldCompiler = "compiler"

	// Timing and counts
	FieldDurationMS = "duration_ms"
	FieldCount      = "count"

	// Errors
	FieldError = "error"
)
