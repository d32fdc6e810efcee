//go:build !windows

package window

import (
	"errors"
	"testing"
)

func TestFindByTitleUnsupported(t *testing.T) {
	if _, err := FindByTitle("anything"); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
}
