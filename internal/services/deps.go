package services

import (
	"encoding/json"
	"log"

	"github.com/yildirimsamet/simplestorage/internal/models"
)

// SearchCache is the optional search-result cache consumed by the catalog
// services. Implementations are best-effort; services treat every failure as
// a miss and a nil cache as always-miss.
type SearchCache interface {
	GetSearch(term string) ([]models.Product, bool, error)
	PutSearch(term string, products []models.Product) error
	InvalidateSearch() error
}

// EventPublisher publishes catalog change events. A nil publisher disables
// events; publish failures are logged, never propagated.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// invalidateSearchCache clears the whole search namespace after a catalog
// write. Any write can change any search result, so nothing finer works.
func invalidateSearchCache(cache SearchCache) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateSearch(); err != nil {
		log.Printf("Warning: failed to invalidate search cache: %v", err)
	}
}

// publishEvent publishes a catalog event, fire-and-forget.
func publishEvent(mq EventPublisher, event string, payload any) {
	if mq == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Warning: failed to marshal %s event: %v", event, err)
		return
	}
	if err := mq.Publish(event, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
