package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   int
		wantOK bool
	}{
		{name: "positive", raw: "42", want: 42, wantOK: true},
		{name: "negative", raw: "-7", want: -7, wantOK: true},
		{name: "explicit plus", raw: "+7", want: 7, wantOK: true},
		{name: "leading whitespace", raw: "  12", want: 12, wantOK: true},
		{name: "trailing garbage", raw: "12abc", want: 12, wantOK: true},
		{name: "decimal truncates", raw: "3.9", want: 3, wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "sign only", raw: "-", wantOK: false},
		{name: "letters", raw: "abc", wantOK: false},
		{name: "overflow", raw: "99999999999999999999999", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAnswer(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsEmptyAnswer(t *testing.T) {
	assert.True(t, IsEmptyAnswer(""))
	assert.True(t, IsEmptyAnswer(" \t"))
	assert.False(t, IsEmptyAnswer("0"))
}
