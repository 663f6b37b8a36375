package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Setup Errors (T001-T019)
	// ============================================

	"T001": {
		Category: CategorySetup,
		Message:  "Toaster not provided",
		Detail:   "No toaster registry was installed in this context. Install one with toaster.Provide before any component asks for it.",
		DocURL:   "https://vango.dev/docs/toaster/errors/T001",
	},

	// ============================================
	// Config Errors (T020-T029)
	// ============================================

	"T020": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The toaster.json file could not be read or parsed.",
		DocURL:   "https://vango.dev/docs/toaster/errors/T020",
	},
	"T021": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or not recognized.",
		DocURL:   "https://vango.dev/docs/toaster/errors/T021",
	},
	"T022": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "The requested toaster.json does not exist.",
		DocURL:   "https://vango.dev/docs/toaster/errors/T022",
	},

	// ============================================
	// CLI Errors (T030-T039)
	// ============================================

	"T030": {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
		Detail:   "A flag or argument was not recognized.",
		DocURL:   "https://vango.dev/docs/toaster/errors/T030",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
