package domain

import "time"

// Settings holds the user-configurable application settings.
type Settings struct {
	// SiteDir is the root of the static site checkout.
	SiteDir string

	// PostsDir is the directory containing post markdown files.
	// Relative paths are resolved against SiteDir.
	PostsDir string

	// DeployCommand is the shell command that builds and publishes the
	// site, run from SiteDir.
	DeployCommand string

	// FetchTimeout bounds a single web fetch including redirects.
	FetchTimeout time.Duration

	// MaxRedirects is the redirect hop cap for a fetch.
	MaxRedirects int

	// MaxBodyBytes is the response body size cap for a fetch.
	MaxBodyBytes int64

	// SearchBaseURL is the HTML search endpoint queried by web search.
	SearchBaseURL string
}

// Default policy values for web retrieval.
const (
	DefaultFetchTimeout  = 30 * time.Second
	DefaultMaxRedirects  = 5
	DefaultMaxBodyBytes  = 5 << 20 // 5 MiB
	DefaultSearchBaseURL = "https://html.duckduckgo.com/html/"
)

// DefaultSettings returns settings with retrieval policy defaults and
// no site configured.
func DefaultSettings() Settings {
	return Settings{
		PostsDir:      "source/_posts",
		DeployCommand: "hexo generate --deploy",
		FetchTimeout:  DefaultFetchTimeout,
		MaxRedirects:  DefaultMaxRedirects,
		MaxBodyBytes:  DefaultMaxBodyBytes,
		SearchBaseURL: DefaultSearchBaseURL,
	}
}
