package log

import (
	"bytes"
	"context"
	"log"
	"regexp"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Initialize(t *testing.T) {
	init := InitLogger{Prefix: "[libraryapp]"}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	l, err := depend.Resolve[*log.Logger]()
	assert.NoError(t, err)
	assert.Equal(t, "[libraryapp] ", l.Prefix())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "[libraryapp]")

	l.Printf("RelayOutbox: relayed %d event(s)", 2)

	assert.Regexp(t,
		regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} \[libraryapp\] RelayOutbox: relayed 2 event\(s\)\n$`),
		buf.String(),
	)
}
