package errors

// Convenience constructors for the build failure kinds the generator can hit.

const (
	msgMissingField  = "required frontmatter field missing"
	msgInvalidDate   = "frontmatter date is not a valid ISO-8601 value"
	msgMarkdown      = "markdown conversion failed"
	msgDuplicateSlug = "duplicate post slug"
	msgLinkCheck     = "rendered site link verification failed"
)

// Config errors

func ConfigNotFound(path string) *BuildError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *BuildError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file could not be parsed").
		WithContext("path", path)
}

// Content errors. Every constructor records the source file so the operator
// can locate the bad input.

func MissingField(sourcePath, field string) *BuildError {
	return New(CategoryContent, SeverityFatal, msgMissingField).
		WithContext("file", sourcePath).
		WithContext("field", field)
}

func InvalidDate(sourcePath, value string, cause error) *BuildError {
	return Wrap(cause, CategoryContent, SeverityFatal, msgInvalidDate).
		WithContext("file", sourcePath).
		WithContext("value", value)
}

func FrontmatterInvalid(sourcePath string, cause error) *BuildError {
	return Wrap(cause, CategoryContent, SeverityFatal, "frontmatter could not be parsed").
		WithContext("file", sourcePath)
}

func MarkdownFailed(sourcePath string, cause error) *BuildError {
	return Wrap(cause, CategoryMarkdown, SeverityFatal, msgMarkdown).
		WithContext("file", sourcePath)
}

func InvalidSlug(sourcePath, title string, cause error) *BuildError {
	return Wrap(cause, CategoryValidation, SeverityFatal, "title does not produce a usable slug").
		WithContext("file", sourcePath).
		WithContext("title", title)
}

// Output errors

func DuplicateSlug(slug, sourcePath string) *BuildError {
	return New(CategoryValidation, SeverityFatal, msgDuplicateSlug).
		WithContext("slug", slug).
		WithContext("file", sourcePath)
}

func RenderFailed(page string, cause error) *BuildError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page rendering failed").
		WithContext("page", page)
}

func Filesystem(operation, path string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filesystem operation failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

func LinkCheckFailed(cause error) *BuildError {
	return Wrap(cause, CategoryRender, SeverityFatal, msgLinkCheck)
}

// Internal errors

func Internal(message string, cause error) *BuildError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}

// Kind predicates, for callers and tests that need finer matching than the
// category alone provides.

func IsMissingField(err error) bool {
	be, ok := err.(*BuildError)
	return ok && be.Category == CategoryContent && be.Message == msgMissingField
}

func IsInvalidDate(err error) bool {
	be, ok := err.(*BuildError)
	return ok && be.Category == CategoryContent && be.Message == msgInvalidDate
}

func IsDuplicateSlug(err error) bool {
	be, ok := err.(*BuildError)
	return ok && be.Category == CategoryValidation && be.Message == msgDuplicateSlug
}

func IsMarkdownFailure(err error) bool {
	be, ok := err.(*BuildError)
	return ok && be.Category == CategoryMarkdown
}
