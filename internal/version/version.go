package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/katalvlaran/sparsecalc/internal/version.Version=<tag>
	Commit  = "unknown" // -X github.com/katalvlaran/sparsecalc/internal/version.Commit=<sha>
	Date    = "unknown" // -X github.com/katalvlaran/sparsecalc/internal/version.Date=<date>
)
