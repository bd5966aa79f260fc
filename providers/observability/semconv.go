package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Parse Attributes ---

const (
	// AttrParseStrategy is the parsing strategy selected by the classifier
	AttrParseStrategy = "parse.strategy"

	// AttrParseItems is the number of items in the final result
	AttrParseItems = "parse.items"

	// AttrParseInputLength is the length of the text input in bytes
	AttrParseInputLength = "parse.input_length"

	// AttrParseLines is the number of non-empty lines in the input
	AttrParseLines = "parse.lines"

	// AttrParseKey is a single extracted key
	AttrParseKey = "parse.key"

	// AttrParseConsolidated is the number of entries folded into the profile
	AttrParseConsolidated = "parse.consolidated"

	// AttrParseFallback indicates the catch-all entry was emitted
	AttrParseFallback = "parse.fallback"
)

// --- Intake Attributes ---

const (
	// AttrIntakeFormat is the detected payload format (fields, html, text)
	AttrIntakeFormat = "intake.format"

	// AttrIntakePayloadLength is the length of the raw payload in bytes
	AttrIntakePayloadLength = "intake.payload_length"

	// AttrIntakePayloadPreview is a truncated excerpt of the raw payload
	AttrIntakePayloadPreview = "intake.payload_preview"
)

// --- Advisory Attributes ---

const (
	// AttrAdvisoryStructured reports the structured-content signal
	AttrAdvisoryStructured = "advisory.structured"

	// AttrAdvisoryLLM reports the LLM-parsing advisory signal
	AttrAdvisoryLLM = "advisory.llm_suggested"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"
)

// --- Event Names ---

const (
	// EventParseStart marks the start of a demographics parse
	EventParseStart = "parse.start"

	// EventParseEnd marks the end of a demographics parse
	EventParseEnd = "parse.end"

	// EventIntakeDecode marks a payload decode in the intake layer
	EventIntakeDecode = "intake.decode"

	// EventProfileConsolidation marks a profile consolidation merge
	EventProfileConsolidation = "parse.profile_consolidation"

	// EventParseFallback marks emission of the catch-all entry
	EventParseFallback = "parse.fallback"
)
