package tokenizer

import (
	"regexp"
	"unicode/utf8"
)

// patternAction selects the handler for a matched pattern rule.
type patternAction int

const (
	// actionGroup protects one match group as a single token and
	// re-submits the unmatched prefix and suffix.
	actionGroup patternAction = iota
	// actionHyperlink protects everything from the protocol to the end
	// of the span and re-submits only the prefix.
	actionHyperlink
	// actionContraction protects an apostrophe contraction suffix,
	// unless the span is already a bare n't-style suffix.
	actionContraction
)

// patternRule pairs a compiled expression with its handler and the
// match group it protects.
type patternRule struct {
	re     *regexp.Regexp
	action patternAction
	group  int
}

var (
	// &amp; &#38; &#x26;
	reHTMLEntity = regexp.MustCompile(`&([A-Za-z]+|#[Xx]?\d+);`)
	// alice@example.com alice.smith@example.com alice:pw@127.0.0.1
	reEmail = regexp.MustCompile(`[\w\-.]+(:\S+)?@(([A-Za-z0-9\-]+\.)+[A-Za-z]{2,12}|\d{1,3}(\.\d{1,3}){3})`)
	// https:// ftp:// ssh:// ...
	reNetworkProtocol = regexp.MustCompile(`(http|https|ftp|sftp|ssh|ssl|telnet|smtp|pop3|imap|imap4|sip)://`)
	// :-) ;( <3 :D B) :p :smile:
	reEmoticon = regexp.MustCompile(`(:\w+:|<[\\/]?3|[()\\|*$][-^]?[:=;]|[:=;B8]([-^]+)?[3DOPp@$*()\\/|]+)(\W|$)`)
	// [1] (2a) {A.1} <a1>
	reListItem = regexp.MustCompile(`([\[({<]+(\d+[A-Za-z]?|[A-Za-z]\d*|\W+)(\.(\d+|[A-Za-z]))*[\])}>]+)`)
	// don't I'll HE'S y'all's
	reApostrophe = regexp.MustCompile(`(?i)[a-z](n['\x{2019}]t|['\x{2019}](ll|nt|re|ve|[dmstz]))(\W|$)`)
	// u.s.a e.g a.b-c (whole-token form, used by the abbreviation merge)
	reAbbreviation = regexp.MustCompile(`^[A-Za-z0-9]([.\-][A-Za-z0-9])*$`)
	// 10kg 5lb 8a.m 100ms (whole-token suffix, used by the unit split)
	reUnit = regexp.MustCompile(`(?i)(\p{Nd})([acdfkmnpyz]?[mg]|[ap]\.m|ch|cwt|d|drc|ft|fur|gr|h|in|lb|lea|mi|ms|oz|pg|qtr|yd)$`)
	// sentence.Boundary (whole-token form, used by the final-mark split)
	reFinalMarkBetween = regexp.MustCompile(`^([A-Za-z]{3,})([.?!]+)([A-Za-z]{3,})$`)
)

// patternRules in match order; the first rule that matches a span wins.
// The expressions protect shapes the symbol scanner would otherwise
// fragment: entities, addresses, hyperlinks, emoticons, list markers,
// contraction suffixes.
var patternRules = []patternRule{
	{re: reHTMLEntity, action: actionGroup},
	{re: reEmail, action: actionGroup},
	{re: reNetworkProtocol, action: actionHyperlink},
	{re: reEmoticon, action: actionGroup, group: 1},
	{re: reListItem, action: actionGroup},
	{re: reApostrophe, action: actionContraction, group: 1},
}

// runeIndex converts a byte offset from a regexp match into a rune
// offset within s.
func runeIndex(s string, byteOff int) int {
	return utf8.RuneCountInString(s[:byteOff])
}
