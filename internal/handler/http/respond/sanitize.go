package respond

import "regexp"

// credentialMasks strips secrets out of error text before it is logged:
// bearer tokens and raw JWTs in full, and the password component of a
// database DSN.
var credentialMasks = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`), "Bearer ****"},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]+`), "****"},
	{regexp.MustCompile(`://([^:]+):([^@]+)@`), "://$1:****@"},
}

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, m := range credentialMasks {
		msg = m.pattern.ReplaceAllString(msg, m.repl)
	}
	return msg
}
