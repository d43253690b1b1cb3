package session

// Placeholders stored in place of a result when an operation fails.
const (
	// TranslationError follows a transport failure or undecodable response.
	TranslationError = "Translation error"
	// TranslationFailed follows a backend rejection or an empty result.
	TranslationFailed = "Translation failed"
	RefinementError   = "Refinement error"
	RefinementFailed  = "Refinement failed"
)

// Notices shown for capability outcomes.
const (
	NoticeRecognitionUnsupported = "Speech recognition not supported"
	NoticeRecognitionError       = "Speech recognition error"
	NoticeSynthesisUnsupported   = "Speech synthesis not supported"
	NoticeSynthesisError         = "Speech playback failed"
)

// State is a snapshot of one session. Result fields are empty until their
// operation completes.
type State struct {
	// Version increases by one on every change. A snapshot with a lower
	// Version than one already seen is stale.
	Version uint64

	InputText      string
	TargetLanguage string
	TranslatedText string
	Transcription  string
	RefinedText    string
	Listening      bool
	// Notice is the latest user-visible capability notice.
	Notice string

	// TranslationErr and RefinementErr hold the failure behind a placeholder
	// result, and are nil once the operation succeeds.
	TranslationErr error
	RefinementErr  error
}
