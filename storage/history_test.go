package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageHistoryBoundedToTwelve(t *testing.T) {
	store := NewStore(NewMemoryKV())

	for i := 1; i <= 13; i++ {
		AppendImageHistory(store, "user@example.com", ImageAnalysis{
			Image:      fmt.Sprintf("image-%d", i),
			AnalyzedAt: time.Now(),
		})
	}

	history := GetImageHistory(store, "user@example.com")
	require.Len(t, history, MaxImageHistory)

	// Newest first; the oldest entry fell off.
	assert.Equal(t, "image-13", history[0].Image)
	assert.Equal(t, "image-2", history[len(history)-1].Image)
}

func TestImageHistoryDedupeMovesToFront(t *testing.T) {
	store := NewStore(NewMemoryKV())

	for i := 1; i <= 5; i++ {
		AppendImageHistory(store, "user@example.com", ImageAnalysis{
			Image: fmt.Sprintf("image-%d", i),
		})
	}

	history := AppendImageHistory(store, "user@example.com", ImageAnalysis{Image: "image-2"})
	require.Len(t, history, 5)
	assert.Equal(t, "image-2", history[0].Image)

	seen := map[string]int{}
	for _, record := range history {
		seen[record.Image]++
	}
	assert.Equal(t, 1, seen["image-2"])
}

func TestImageHistoryPerUserIsolation(t *testing.T) {
	store := NewStore(NewMemoryKV())

	AppendImageHistory(store, "a@example.com", ImageAnalysis{Image: "a"})
	AppendImageHistory(store, "b@example.com", ImageAnalysis{Image: "b"})

	assert.Len(t, GetImageHistory(store, "a@example.com"), 1)
	assert.Len(t, GetImageHistory(store, "b@example.com"), 1)
	assert.Equal(t, "a", GetImageHistory(store, "a@example.com")[0].Image)
}
