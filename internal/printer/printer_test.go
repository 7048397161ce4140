package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("Account created for %s", "asha@example.com")
	p.Errorf("%d error(s) found", 2)
	p.Printf("  %s", "detail")

	out := buf.String()
	assert.Contains(t, out, "Account created for asha@example.com\n")
	assert.Contains(t, out, "2 error(s) found\n")
	assert.Contains(t, out, "  detail\n")
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}
