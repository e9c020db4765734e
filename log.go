package markdown

import (
	"log"
	"os"
)

// Logger is where non-fatal diagnostics go: a rule with a non-finite
// Order (included anyway, per spec §7). No third-party logging library
// appears anywhere in the reference corpus this module was built from,
// so this follows the zero-dependency-library idiom and uses the
// standard library's log package, same as the rest of this otherwise
// dependency-light package. Embedders that want structured logging can
// redirect it with Logger.SetOutput/Logger.SetFlags or swap Logger
// entirely.
var Logger = log.New(os.Stderr, "markdown: ", 0)

func warnBadOrder(ruleName string, order float64) {
	Logger.Printf("rule %q has a non-finite order (%v); including it anyway", ruleName, order)
}
