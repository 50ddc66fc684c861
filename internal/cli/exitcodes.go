package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, bad indices, or when the user needs
	// to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: task not found, column not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: invalid JSON input, corrupted backups, or data that cannot
	// be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid priority values, invalid status, bad dates, or any
	// case where input fails validation rules.
	ExitValidation = 5
)
