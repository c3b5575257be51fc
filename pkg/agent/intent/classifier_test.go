package intent

import (
	"testing"

	"crm-agent-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "refund keyword",
			text: "I want a refund",
			want: constant.IntentRefund,
		},
		{
			name: "money back phrase",
			text: "Can I get my money back?",
			want: constant.IntentRefund,
		},
		{
			name: "refund wins over lead keywords",
			text: "I'm interested in a demo but first I need a refund",
			want: constant.IntentRefund,
		},
		{
			name: "refund wins over support keywords",
			text: "My order is broken, refund please",
			want: constant.IntentRefund,
		},
		{
			name: "buy keyword",
			text: "I'd like to buy the Pro plan",
			want: constant.IntentLeadCapture,
		},
		{
			name: "interested keyword",
			text: "My name is Sam, I'm interested in a demo",
			want: constant.IntentLeadCapture,
		},
		{
			name: "lead wins over support keywords",
			text: "interested, but the signup page shows an error",
			want: constant.IntentLeadCapture,
		},
		{
			name: "broken keyword",
			text: "The dashboard is broken",
			want: constant.IntentSupportIssue,
		},
		{
			name: "password keyword",
			text: "I forgot my password",
			want: constant.IntentSupportIssue,
		},
		{
			name: "case insensitive",
			text: "REFUND NOW",
			want: constant.IntentRefund,
		},
		{
			name: "substring containment matches inside words",
			text: "refundable items only",
			want: constant.IntentRefund,
		},
		{
			name: "no keywords",
			text: "What's the weather like?",
			want: constant.IntentUnknown,
		},
		{
			name: "empty text",
			text: "",
			want: constant.IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}
