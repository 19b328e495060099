package helpers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	emptyDigest = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	helloDigest = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("forced read error")
}

func TestSHA256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		want      string
		wantShort string
	}{
		{name: "empty string", in: "", want: emptyDigest, wantShort: "e3b0c442"},
		{name: "hello world", in: "hello world", want: helloDigest, wantShort: "b94d27b9"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SHA256(tt.in))
			assert.Equal(t, tt.wantShort, ShortSHA256(tt.in))

			got, err := SHA256Reader(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSHA256ReaderError(t *testing.T) {
	t.Parallel()

	got, err := SHA256Reader(failingReader{})
	require.Error(t, err)
	assert.Empty(t, got)
}
