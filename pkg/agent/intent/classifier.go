package intent

import (
	"strings"

	"crm-agent-be/internal/constant"
)

// rule maps a set of substrings to an intent. Rules are evaluated in
// order; the first rule with any matching keyword wins.
type rule struct {
	keywords []string
	intent   string
}

var rules = []rule{
	{keywords: []string{"refund", "money back"}, intent: constant.IntentRefund},
	{keywords: []string{"buy", "interested", "demo"}, intent: constant.IntentLeadCapture},
	{keywords: []string{"broken", "help", "error", "password"}, intent: constant.IntentSupportIssue},
}

// Detect classifies an inbound message by ordered keyword containment
// against the lower-cased text. The rule list is a deliberately simple
// contract; keep the ordering and substring semantics as-is.
func Detect(text string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.intent
			}
		}
	}
	return constant.IntentUnknown
}
