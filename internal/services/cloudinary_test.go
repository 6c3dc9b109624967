package services

import (
	"errors"
	"mime/multipart"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headers(names ...string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, len(names))
	for i, n := range names {
		out[i] = &multipart.FileHeader{Filename: n}
	}
	return out
}

func TestUploadAll_PreservesInputOrder(t *testing.T) {
	files := headers("un.jpg", "deux.jpg", "trois.jpg")

	urls, err := uploadAll(files, func(fh *multipart.FileHeader) (string, error) {
		// le premier fichier finit en dernier : l'ordre de complétion
		// ne doit pas influencer l'ordre du résultat
		if fh.Filename == "un.jpg" {
			time.Sleep(20 * time.Millisecond)
		}
		return "https://img.example.com/" + fh.Filename, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://img.example.com/un.jpg",
		"https://img.example.com/deux.jpg",
		"https://img.example.com/trois.jpg",
	}, urls)
}

func TestUploadAll_FirstErrorFailsWholeBatch(t *testing.T) {
	files := headers("un.jpg", "deux.jpg", "trois.jpg")
	uploadErr := errors.New("quota dépassé")

	var calls atomic.Int32
	urls, err := uploadAll(files, func(fh *multipart.FileHeader) (string, error) {
		calls.Add(1)
		if fh.Filename == "deux.jpg" {
			return "", uploadErr
		}
		return "https://img.example.com/" + fh.Filename, nil
	})

	require.ErrorIs(t, err, uploadErr)
	assert.Nil(t, urls) // pas de lot partiel
	assert.Equal(t, int32(3), calls.Load())
}

func TestUploadAll_Empty(t *testing.T) {
	urls, err := uploadAll(nil, func(*multipart.FileHeader) (string, error) {
		t.Fatal("ne doit pas être appelé")
		return "", nil
	})
	require.NoError(t, err)
	assert.Empty(t, urls)
}
