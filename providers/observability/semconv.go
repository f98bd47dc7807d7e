package observability

// Semantic conventions for observability attributes.

// --- LLM Backend Attributes ---

const (
	// AttrLLMProvider is the name of the backend (e.g., "openai")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier (e.g., "gpt-4o-mini")
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMRequestID is the client-generated request correlation id
	AttrLLMRequestID = "llm.request.id"

	// AttrLLMFunction is the function name the backend was asked to call
	AttrLLMFunction = "llm.function"

	// AttrLLMMaxTokens is the maximum tokens allowed
	AttrLLMMaxTokens = "llm.max_tokens" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Extraction Attributes ---

const (
	// AttrExtractSchema is the name of the schema description being bound
	AttrExtractSchema = "extract.schema"

	// AttrExtractStage is the pipeline stage reached
	AttrExtractStage = "extract.stage"

	// AttrExtractSource is the envelope branch that produced the candidate
	AttrExtractSource = "extract.source"

	// AttrExtractOutcome is "bound" or "no_result"
	AttrExtractOutcome = "extract.outcome"

	// AttrExtractInputSize is the raw completion size in bytes
	AttrExtractInputSize = "extract.input.size"

	// AttrExtractCandidateSize is the candidate size in bytes
	AttrExtractCandidateSize = "extract.candidate.size"

	// AttrExtractTruncations is the number of values clipped or dropped
	AttrExtractTruncations = "extract.truncations"

	// AttrExtractMissing lists required fields absent from the object
	AttrExtractMissing = "extract.missing"

	// AttrExtractValid reports whether the bound record matched its JSON Schema
	AttrExtractValid = "extract.valid"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	AttrError             = "error"
	AttrDuration          = "duration"
	AttrStatus            = "status"
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanExtract wraps one run of the extraction pipeline
	SpanExtract = "extract.run"

	// SpanLLMRequest wraps one backend request
	SpanLLMRequest = "llm.request"

	// SpanClientExtract wraps a request followed by extraction
	SpanClientExtract = "client.extract"
)

// --- Event Names ---

const (
	EventEnvelopeRead = "extract.envelope"
	EventNarrowed     = "extract.narrowed"
	EventBound        = "extract.bound"
	EventFailed       = "extract.failed"
	EventValidated    = "extract.validated"
)

// --- Metric Names ---

const (
	// MetricExtractCount counts pipeline runs by outcome and stage
	MetricExtractCount = "llmextract.extract.count"

	// MetricExtractTruncations counts corrected constraint violations
	MetricExtractTruncations = "llmextract.extract.truncations"

	// MetricExtractViolations counts bound records that failed schema validation
	MetricExtractViolations = "llmextract.extract.violations"

	// MetricExtractDuration records pipeline duration in milliseconds
	MetricExtractDuration = "llmextract.extract.duration"

	// MetricClientRequestCount counts backend requests by status
	MetricClientRequestCount = "llmextract.client.request.count"

	// MetricClientRequestDuration records backend request duration in milliseconds
	MetricClientRequestDuration = "llmextract.client.request.duration"
)
