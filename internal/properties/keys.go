package properties

import (
	"strings"
	"unicode"
)

// Normalize converts a property key to its canonical, environment-variable
// form: letters are upper-cased, '.', '-' and '[' become '_', ']' is
// dropped and an upper-case letter following a lower-case one starts a new
// word.
//
//	app.properties.report.interval-in-days -> APP_PROPERTIES_REPORT_INTERVAL_IN_DAYS
//	app.properties.report.intervalInDays   -> APP_PROPERTIES_REPORT_INTERVAL_IN_DAYS
//	app.servers[0].host                    -> APP_SERVERS_0_HOST
//
// Normalize is idempotent.
func Normalize(key string) string {
	var sb strings.Builder
	sb.Grow(len(key) + 4)

	prevLower := false
	for _, r := range strings.TrimSpace(key) {
		switch r {
		case '.', '-', '[':
			sb.WriteByte('_')
		case ']':
		default:
			if prevLower && unicode.IsUpper(r) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToUpper(r))
		}
		prevLower = unicode.IsLower(r)
	}

	return sb.String()
}
