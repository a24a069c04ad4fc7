package utils

const (
	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal diagnostics emitted by main.
	ApplicationExecutionFailedMessage = "Error"
	// ApplicationName is the command name shown in usage and version output.
	ApplicationName = "ftg"
	// ApplicationAuthorURL is printed by --version.
	ApplicationAuthorURL = "https://github.com/easttexaselectronics"
)
