package consolefmt

import (
	"os"
	"strings"
)

// DetectColorSupport returns true if the environment likely wants SGR output.
// It does not check whether the output is a terminal.
func DetectColorSupport() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if force := os.Getenv("FORCE_COLOR"); force != "" {
		return force != "0" && !strings.EqualFold(force, "false")
	}
	if os.Getenv("COLORTERM") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "" || term == "dumb" {
		return false
	}
	return true
}
