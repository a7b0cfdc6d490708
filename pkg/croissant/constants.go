package croissant

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error (generation failed)
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error, including generation failures
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitValidationFailed = 20 // Metadata document does not conform
	ExitDocumentError    = 21 // Metadata document could not be read or parsed
)

// JSON-LD type tags recognized by the validator and emitted by the generator.
const (
	TypeDataset    = "sc:Dataset"
	TypeFileObject = "cr:FileObject"
	TypeFileSet    = "cr:FileSet"
	TypeRecordSet  = "cr:RecordSet"
	TypeField      = "cr:Field"
)

// Scalar data type tags for fields.
const (
	DataTypeText     = "sc:Text"
	DataTypeInteger  = "sc:Integer"
	DataTypeFloat    = "sc:Float"
	DataTypeBoolean  = "sc:Boolean"
	DataTypeDate     = "sc:Date"
	DataTypeDateTime = "sc:DateTime"
	DataTypeTime     = "sc:Time"
	DataTypeURL      = "sc:URL"
	DataTypeNumber   = "sc:Number"
)

// StandardDataTypes lists the scalar types a field is expected to declare.
// Any other non-empty value is tolerated with a warning.
var StandardDataTypes = []string{
	DataTypeText,
	DataTypeInteger,
	DataTypeFloat,
	DataTypeBoolean,
	DataTypeDate,
	DataTypeDateTime,
	DataTypeTime,
	DataTypeURL,
	DataTypeNumber,
}

// IsStandardDataType reports whether dataType is one of StandardDataTypes.
func IsStandardDataType(dataType string) bool {
	for _, t := range StandardDataTypes {
		if t == dataType {
			return true
		}
	}
	return false
}

const (
	// DefaultConformsTo is the Croissant specification version generated documents declare.
	DefaultConformsTo = "http://mlcommons.org/croissant/1.0"

	// DefaultVersion is the dataset version written by the generator.
	DefaultVersion = "1.0.0"

	// DefaultRecordSetName names the single record set produced from a CSV file.
	DefaultRecordSetName = "main"

	// DefaultEncodingFormat is the MIME type recorded for CSV distributions.
	DefaultEncodingFormat = "text/csv"

	// DatePublishedLayout is the layout of the datePublished property.
	DatePublishedLayout = "2006-01-02"
)
