package config

// Fetch defaults
const (
	DefaultBOJBaseURL          = "https://www.acmicpc.net/problem/"
	DefaultSolvedacBaseURL     = "https://solved.ac/api/v3"
	DefaultUserAgent           = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultFetchTimeoutSeconds = 10
)

// Candidate execution defaults
const (
	DefaultRunTimeoutSeconds = 5.0
	DefaultMaxOutputBytes    = 1048576
)

// DefaultConfigFile is the config filename looked up in the working directory.
const DefaultConfigFile = "bojctl.yaml"
