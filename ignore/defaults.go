package ignore

// DefaultIgnorePatterns are always excluded from scanning. The binary sniff
// catches binaries anyway; these save opening files that are never
// interesting targets for a tree-wide substitution.
var DefaultIgnorePatterns = []string{
	// Version control
	".git",
	".svn",
	".hg",

	// Dependencies
	"node_modules",
	"vendor",
	"bower_components",

	// Build output
	"dist",
	"build",
	"target",
	"bin",
	"obj",

	// IDE / Editor
	".idea",
	".vscode",
	"*.swp",
	"*.swo",
	"*~",

	// OS files
	".DS_Store",
	"Thumbs.db",

	// Python
	"__pycache__",
	"*.pyc",
	".venv",
	"venv",

	// Compiled artifacts
	"*.exe",
	"*.dll",
	"*.so",
	"*.dylib",
	"*.o",
	"*.a",
	"*.class",
	"*.jar",

	// Archives and media
	"*.zip",
	"*.tar",
	"*.tar.gz",
	"*.tgz",
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.gif",
	"*.ico",
	"*.pdf",
	"*.woff",
	"*.woff2",
	"*.ttf",

	// Generated text nobody wants rewritten
	"*.min.js",
	"*.min.css",
	"*.map",
	"package-lock.json",
	"yarn.lock",
	"Cargo.lock",
	"go.sum",
	"*.log",

	// Caches
	"coverage",
	".cache",
	".next",

	// Databases
	"*.sqlite",
	"*.db",
}
