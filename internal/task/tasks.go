package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeWarmMediaCache = "media:warm_cache"

type WarmMediaCachePayload struct {
	Department string `json:"department"`
	Slot       string `json:"slot"`
}

// NewWarmMediaCacheTask creates an Asynq task that prefetches the image mapped
// to a department/slot pair into the local cache.
func NewWarmMediaCacheTask(department, slot string) (*asynq.Task, error) {
	p := WarmMediaCachePayload{Department: department, Slot: slot}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal warm-media-cache payload: %w", err)
	}
	return asynq.NewTask(TypeWarmMediaCache, data), nil
}

// ParseWarmMediaCachePayload parses the task payload to WarmMediaCachePayload.
func ParseWarmMediaCachePayload(t *asynq.Task) (WarmMediaCachePayload, error) {
	var p WarmMediaCachePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return WarmMediaCachePayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
