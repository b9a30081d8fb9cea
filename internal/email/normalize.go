package email

import "strings"

// Providers that treat the local part case-insensitively and support
// subaddressing. Gmail additionally ignores dots.
var (
	gmailDomains = map[string]bool{
		"gmail.com":      true,
		"googlemail.com": true,
	}
	plusSubaddressDomains = map[string]bool{
		"outlook.com": true,
		"hotmail.com": true,
		"live.com":    true,
		"icloud.com":  true,
		"me.com":      true,
	}
	hyphenSubaddressDomains = map[string]bool{
		"yahoo.com":      true,
		"ymail.com":      true,
		"rocketmail.com": true,
	}
)

// Normalize canonicalizes an email address so that aliases of the same
// mailbox compare equal: the whole address is lowercased, Gmail dots and
// +suffixes are stripped (and googlemail.com folds into gmail.com), and
// provider subaddresses (+tag, Yahoo's -tag) are removed. The function is
// deterministic and idempotent; inputs without an @ are returned lowercased.
func Normalize(addr string) string {
	addr = strings.ToLower(strings.TrimSpace(addr))

	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return addr
	}
	local, domain := addr[:at], addr[at+1:]

	switch {
	case gmailDomains[domain]:
		local = strings.ReplaceAll(local, ".", "")
		local, _, _ = strings.Cut(local, "+")
		domain = "gmail.com"
	case plusSubaddressDomains[domain]:
		local, _, _ = strings.Cut(local, "+")
	case hyphenSubaddressDomains[domain]:
		local, _, _ = strings.Cut(local, "-")
	}

	return local + "@" + domain
}
