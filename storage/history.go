package storage

import (
	"log"
	"time"

	"github.com/reality-check/api-go/types"
)

// Image history keeps the 12 most recent photo analyses per user, newest
// first. Re-analyzing an identical image moves the existing record to the
// front instead of duplicating it.
const MaxImageHistory = 12

type ImageAnalysis struct {
	Image      string           `json:"image"` // object key or data URL
	Foods      []types.FoodItem `json:"foods"`
	AnalyzedAt time.Time        `json:"analyzedAt"`
}

func ImageHistoryKey(userKey string) string {
	return "image-history:" + userKey
}

func GetImageHistory(store *Store, userKey string) []ImageAnalysis {
	var history []ImageAnalysis
	store.Get(ImageHistoryKey(userKey), &history)
	return history
}

func AppendImageHistory(store *Store, userKey string, record ImageAnalysis) []ImageAnalysis {
	history := GetImageHistory(store, userKey)

	kept := make([]ImageAnalysis, 0, len(history)+1)
	kept = append(kept, record)
	for _, existing := range history {
		if existing.Image == record.Image {
			continue
		}
		kept = append(kept, existing)
	}
	if len(kept) > MaxImageHistory {
		kept = kept[:MaxImageHistory]
	}

	if err := store.Set(ImageHistoryKey(userKey), kept); err != nil {
		log.Printf("storage: persist image history: %v", err)
	}
	return kept
}
