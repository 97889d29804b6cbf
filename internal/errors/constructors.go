package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *NavBuilderError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *NavBuilderError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Content errors

func DiscoveryError(cause error) *NavBuilderError {
	return Wrap(cause, CategoryContent, SeverityFatal, "page discovery failed")
}

func GitSourceError(repo string, cause error) *NavBuilderError {
	return Wrap(cause, CategoryGit, SeverityFatal, "git content source failed").
		WithContext("repository", repo)
}

// Build and sink errors

func BuildFailed(cause error) *NavBuilderError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "navigation build failed")
}

func StoreError(backend string, cause error) *NavBuilderError {
	return Wrap(cause, CategoryStore, SeverityFatal, "metadata store operation failed").
		WithContext("backend", backend)
}

// Internal errors

func InternalError(message string, cause error) *NavBuilderError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
