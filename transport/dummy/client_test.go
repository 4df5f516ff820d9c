package dummy

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockClient(t *testing.T) {
	t.Run("no looping", func(t *testing.T) {
		slices := [][]byte{
			[]byte("Hello"), []byte("world!"),
		}
		client := NewMockClient(slices...).Once()

		for _, slice := range slices {
			got, err := client.Read()
			require.NoError(t, err)
			require.Equal(t, string(slice), string(got))
		}

		_, err := client.Read()
		require.EqualError(t, err, io.EOF.Error())
		require.Equal(t, 2, client.Reads())
	})

	t.Run("looped slices", func(t *testing.T) {
		slices := [][]byte{
			[]byte("Hello"), []byte("world"), []byte("!"),
		}
		client := NewMockClient(slices...)
		for i := 0; i < len(slices)*2; i++ {
			data, err := client.Read()
			require.NoError(t, err)
			require.Equal(t, string(slices[i%len(slices)]), string(data))
		}
	})

	t.Run("pushback", func(t *testing.T) {
		client := NewMockClient([]byte("Hello")).Once()
		data, err := client.Read()
		require.NoError(t, err)
		client.Pushback(data[2:])
		data, err = client.Read()
		require.NoError(t, err)
		require.Equal(t, "llo", string(data))
		require.Equal(t, 1, client.Reads())
	})

	t.Run("custom failure", func(t *testing.T) {
		boom := errors.New("boom")
		client := NewMockClient([]byte("a")).FailWith(boom)
		_, err := client.Read()
		require.NoError(t, err)
		_, err = client.Read()
		require.ErrorIs(t, err, boom)
	})

	t.Run("journaling", func(t *testing.T) {
		client := NewMockClient()
		_, _ = client.Write([]byte("Hello, "))
		_, _ = client.Write([]byte("world!"))
		require.Equal(t, "Hello, world!", client.Written())
		require.NoError(t, client.Close())
		require.True(t, client.Closed())
		_, err := client.Write([]byte("late"))
		require.Error(t, err)
	})
}
