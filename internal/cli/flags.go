package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	BatchFile  string
	OutputFile string
	DBPath     string
	LogLevel   string
	Check      bool
	ListModels bool

	// Backend selection
	NoCloud bool
	NoLocal bool

	// Cloud flags
	CloudProvider string
	CloudURL      string
	CloudBreaker  bool
	GeminiModel   string
	GCPKey        string

	// Local model flags
	LocalEngine string
	LocalURL    string
	LocalModel  string
	Detector    string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:      "info",
		CloudProvider: "google",
		GeminiModel:   "gemini-2.0-flash",
		LocalEngine:   "m2m",
		Detector:      "lingua",
	}
}
