package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not found in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrNoTargetsSpecified is returned when no targets are specified for the run command.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrOutputConflict is returned when two tasks declare overlapping outputs.
	ErrOutputConflict = zerr.New("tasks declare overlapping outputs")

	// ErrOutputPathOutsideRoot is returned when an output path is outside the project root.
	ErrOutputPathOutsideRoot = zerr.New("output path is outside project root")

	// ErrInvalidMode is returned when a mode name is not recognized.
	ErrInvalidMode = zerr.New("invalid mode, expected 'development' or 'distribution'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file holds an unusable value.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrTaskExecutionFailed is returned when a task execution fails.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrUnknownTask is returned when an executor is asked to run a task it does not own.
	ErrUnknownTask = zerr.New("no runner registered for task")

	// ErrInputResolutionFailed is returned when input resolution fails.
	ErrInputResolutionFailed = zerr.New("failed to resolve inputs")

	// ErrInvalidPattern is returned when a glob pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrReadFailed is returned when a source file cannot be read.
	ErrReadFailed = zerr.New("failed to read source file")

	// ErrWriteFailed is returned when an output file cannot be written.
	ErrWriteFailed = zerr.New("failed to write output file")

	// ErrCleanFailed is returned when the output root cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean output root")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrManifestReadFailed is returned when a vendor manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read vendor manifest")

	// ErrManifestParseFailed is returned when a vendor manifest is not a list of paths.
	ErrManifestParseFailed = zerr.New("vendor manifest must be a list of paths")

	// ErrToolNotFound is returned when an external tool is not installed.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrToolFailed is returned when an external tool exits with an error.
	ErrToolFailed = zerr.New("tool failed")

	// ErrStyleCompileFailed is returned when a stylesheet cannot be compiled.
	ErrStyleCompileFailed = zerr.New("failed to compile stylesheet")

	// ErrTypeCheckFailed is returned when the type-check command reports errors.
	ErrTypeCheckFailed = zerr.New("type check failed")

	// ErrTranspileFailed is returned when a script cannot be transpiled.
	ErrTranspileFailed = zerr.New("failed to transpile script")

	// ErrMinifyFailed is returned when minification fails.
	ErrMinifyFailed = zerr.New("failed to minify output")

	// ErrJSONMergeFailed is returned when a JSON source cannot be merged.
	ErrJSONMergeFailed = zerr.New("failed to merge json")

	// ErrImageOptimizeFailed is returned when an image cannot be optimized.
	ErrImageOptimizeFailed = zerr.New("failed to optimize image")

	// ErrHTMLRewriteFailed is returned when an HTML document cannot be rewritten.
	ErrHTMLRewriteFailed = zerr.New("failed to cache-bust html")

	// ErrServerFailed is returned when the reload server stops unexpectedly.
	ErrServerFailed = zerr.New("reload server failed")

	// ErrWatcherFailed is returned when the file watcher cannot start.
	ErrWatcherFailed = zerr.New("file watcher failed")
)
