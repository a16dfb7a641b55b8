package email

// The tables below are fixed at process start and only ever read. They back
// the deterministic canonicalization steps in Normalize.

// typoTLDs rewrites a misspelled final label to the intended one. The key is
// the bare label, without a leading dot.
var typoTLDs = map[string]string{
	"cmo": "com",
	"cpm": "com",
	"cmm": "com",
	"cok": "com",
	"cim": "com",
	"cvm": "com",
	"vom": "com",
	"xom": "com",
	"ner": "net",
	"nrt": "net",
	"ogr": "org",
}

// duplicateSuffixes are suffixes that callers accidentally type twice, either
// dotted ("example.com.com") or run together ("example.comcom"). Both forms
// collapse to a single occurrence.
var duplicateSuffixes = []string{"com", "net", "org"}

// typoDomains corrects whole-domain misspellings, including canonical
// spellings with stray leading characters.
var typoDomains = map[string]string{
	"gamil.com":     "gmail.com",
	"gmali.com":     "gmail.com",
	"gmial.com":     "gmail.com",
	"gmil.com":      "gmail.com",
	"gmaill.com":    "gmail.com",
	"gmailm.com":    "gmail.com",
	"gmailo.com":    "gmail.com",
	"35gmai.com":    "gmail.com",
	"636gmail.com":  "gmail.com",
	"yahoogmail.com": "gmail.com",
	"putlook.com":   "outlook.com",
}

// equivalentDomains maps provider- and country-specific domains onto the one
// canonical domain the provider routes them to.
var equivalentDomains = map[string]string{
	"googlemail.com": "gmail.com",
	"pm.me":          "protonmail.com",
	"proton.me":      "protonmail.com",
	"ya.ru":          "yandex.ru",
	"yandex.by":      "yandex.ru",
	"yandex.com":     "yandex.ru",
	"yandex.kz":      "yandex.ru",
	"yandex.ua":      "yandex.ru",
}

// yahooDomains use "-" instead of "+" to introduce an address alias.
var yahooDomains = map[string]bool{
	"y7mail.com":    true,
	"yahoo.at":      true,
	"yahoo.be":      true,
	"yahoo.ca":      true,
	"yahoo.co.id":   true,
	"yahoo.co.il":   true,
	"yahoo.co.in":   true,
	"yahoo.co.kr":   true,
	"yahoo.co.nz":   true,
	"yahoo.co.th":   true,
	"yahoo.co.uk":   true,
	"yahoo.com":     true,
	"yahoo.com.ar":  true,
	"yahoo.com.au":  true,
	"yahoo.com.br":  true,
	"yahoo.com.co":  true,
	"yahoo.com.hk":  true,
	"yahoo.com.mx":  true,
	"yahoo.com.my":  true,
	"yahoo.com.ph":  true,
	"yahoo.com.sg":  true,
	"yahoo.com.tw":  true,
	"yahoo.com.vn":  true,
	"yahoo.cz":      true,
	"yahoo.de":      true,
	"yahoo.dk":      true,
	"yahoo.es":      true,
	"yahoo.fi":      true,
	"yahoo.fr":      true,
	"yahoo.gr":      true,
	"yahoo.hu":      true,
	"yahoo.ie":      true,
	"yahoo.in":      true,
	"yahoo.it":      true,
	"yahoo.nl":      true,
	"yahoo.no":      true,
	"yahoo.pl":      true,
	"yahoo.pt":      true,
	"yahoo.ro":      true,
	"yahoo.se":      true,
	"ymail.com":     true,
}

// fastmailDomains are roots whose personal subdomains double as addresses:
// alias@user.fastmail.com delivers to user@fastmail.com.
var fastmailDomains = map[string]bool{
	"fastmail.cn":     true,
	"fastmail.co.uk":  true,
	"fastmail.com":    true,
	"fastmail.com.au": true,
	"fastmail.de":     true,
	"fastmail.es":     true,
	"fastmail.fm":     true,
	"fastmail.fr":     true,
	"fastmail.im":     true,
	"fastmail.in":     true,
	"fastmail.jp":     true,
	"fastmail.mx":     true,
	"fastmail.net":    true,
	"fastmail.nl":     true,
	"fastmail.org":    true,
	"fastmail.se":     true,
	"fastmail.to":     true,
	"fastmail.tw":     true,
	"fastmail.uk":     true,
	"fastmail.us":     true,
}
