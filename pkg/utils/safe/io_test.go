package safe_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/fixwatch/pkg/utils/safe"
)

type failCloser struct{}

func (x *failCloser) Close() error {
	return errors.New("close failed")
}

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		reader := io.NopCloser(bytes.NewReader([]byte("test")))
		safe.Close(reader) // Should not panic
	})

	t.Run("close nil reader", func(t *testing.T) {
		safe.Close(nil) // Should not panic
	})

	t.Run("close failing closer", func(t *testing.T) {
		safe.Close(&failCloser{}) // Logs, should not panic
	})
}
