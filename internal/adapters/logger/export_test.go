// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectMessages = collectMessages
	FormatMessages  = formatMessages
)

// NewLineHandler exports the line handler constructor for testing.
var NewLineHandler = newLineHandler
