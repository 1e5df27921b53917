package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string

	// Data source
	Source         string
	DataDir        string
	S3Bucket       string
	S3Prefix       string
	Profile        string
	Region         string
	SheetID        string
	DSN            string
	Schema         string
	GroupedTable   string
	UngroupedTable string

	// Build
	TopN        int
	OnInvalid   string
	Strict      bool
	SummaryOnly bool
	ChartOnly   bool

	// Output
	ReportName string
	ReportType []string
	Dir        string
	Verbose    bool
	LogFile    string
}

// SkipInvalidRows reports whether rows failing numeric coercion are skipped instead of aborting.
func (a *CLIArgs) SkipInvalidRows() bool {
	return a.OnInvalid == OnInvalidSkip
}

const (
	OnInvalidAbort = "abort"
	OnInvalidSkip  = "skip"

	DefaultGroupedTable   = "Brand freshness grouped"
	DefaultUngroupedTable = "Brand freshness"
	DefaultTopN           = 30
)
