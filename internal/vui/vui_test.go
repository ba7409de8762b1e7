package vui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgoltzsche/echo-vui/internal/catalog"
	"github.com/mgoltzsche/echo-vui/internal/model"
	"github.com/mgoltzsche/echo-vui/internal/pubsub"
	"github.com/mgoltzsche/echo-vui/pkg/config"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("", time.Now)
	require.NoError(t, err)
	require.Equal(t, catalog.Default(time.Now).Len(), c.Len(), "built-in catalog")

	file := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(file, []byte("responses:\n- question: not_found\n  answer: Pardon?\n"), 0o644))

	c, err = LoadCatalog(file, time.Now)
	require.NoError(t, err)
	require.Equal(t, []string{catalog.NotFoundKey}, c.Questions())
}

func TestAssistantRejectsInvalidConfiguration(t *testing.T) {
	cfg := config.Default()
	cfg.MaxEmptyListens = 0

	_, err := Assistant(cfg, pubsub.New[model.Event](), nil)
	require.Error(t, err)
}

type fakeCloser struct {
	closed *[]string
	name   string
	err    error
}

func (c fakeCloser) Close() error {
	*c.closed = append(*c.closed, c.name)
	return c.err
}

func TestClosers(t *testing.T) {
	failure := errors.New("close failed")

	for _, c := range []struct {
		name        string
		failing     error
		expectError bool
	}{
		{"all released", nil, false},
		{"error joined", failure, true},
	} {
		t.Run(c.name, func(t *testing.T) {
			var closed []string
			testee := closers{
				fakeCloser{closed: &closed, name: "model", err: c.failing},
				nil,
				fakeCloser{closed: &closed, name: "device"},
			}

			err := testee.Close()
			require.Equal(t, []string{"model", "device"}, closed, "release order")
			if c.expectError {
				require.ErrorIs(t, err, failure)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
