// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagAdd    = "add"     // Append instead of replace
	FlagAdmin  = "admin"   // Run as an administrative request
	FlagDryRun = "dry-run" // Preview without making changes
	FlagIDs    = "ids"     // Output post IDs only
	FlagLocal  = "local"   // Use local scope (gitignored)
	FlagRaw    = "raw"     // Raw output without formatting

	// String flags

	FlagContent = "content" // Post content
	FlagDate    = "date"    // Publication date (RFC3339 or YYYY-MM-DD)
	FlagPrefix  = "prefix"  // Table prefix
	FlagStatus  = "status"  // Post status
	FlagType    = "type"    // Post type

	// String array flags

	FlagMeta = "meta" // key=value metadata, repeatable
	FlagTerm = "term" // taxonomy=name term, repeatable

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)
