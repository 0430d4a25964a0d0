package errors

// ErrorCode identifies a class of application error.
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_MISSING_FIELD
	ErrorCode_INVALID_DATE
	ErrorCode_INVALID_ENTITY
	ErrorCode_ARCHIVE_NOT_FOUND
	ErrorCode_ARCHIVE_PARSE
	ErrorCode_INVALID_ARCHIVE
	ErrorCode_ARCHIVE_FETCH_FAILED
	ErrorCode_EXPORT_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_MISSING_FIELD:        "MISSING_FIELD",
	ErrorCode_INVALID_DATE:         "INVALID_DATE",
	ErrorCode_INVALID_ENTITY:       "INVALID_ENTITY",
	ErrorCode_ARCHIVE_NOT_FOUND:    "ARCHIVE_NOT_FOUND",
	ErrorCode_ARCHIVE_PARSE:        "ARCHIVE_PARSE",
	ErrorCode_INVALID_ARCHIVE:      "INVALID_ARCHIVE",
	ErrorCode_ARCHIVE_FETCH_FAILED: "ARCHIVE_FETCH_FAILED",
	ErrorCode_EXPORT_FAILED:        "EXPORT_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
