package store

import (
	"pricingdesk.app/server/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) PricingRequests() PricingRequestStore {
	return newPricingRequestStore(s.queries)
}

func (s *Stores) Comments() CommentStore {
	return newCommentStore(s.queries)
}

func (s *Stores) Notifications() NotificationStore {
	return newNotificationStore(s.queries)
}
