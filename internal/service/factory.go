package service

import (
	"time"

	"github.com/jonboulle/clockwork"

	"pricingdesk.app/server/internal/auth"
	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/store"
)

type Services struct {
	stores      *store.Stores
	attachments AttachmentChecker
	txRunner    TxRunner
	notifier    Notifier
	clock       clockwork.Clock
	orgDomain   string

	codes     auth.CodeStore
	tokens    TokenIssuer
	directory Directory
	composer  *email.Composer
	outbox    email.Outbox
	codeTTL   time.Duration
}

type ServicesConfig struct {
	Stores      *store.Stores
	Attachments AttachmentChecker
	TxRunner    TxRunner
	Notifier    Notifier
	Clock       clockwork.Clock
	OrgDomain   string

	Codes     auth.CodeStore
	Tokens    TokenIssuer
	Directory Directory
	Composer  *email.Composer
	Outbox    email.Outbox
	CodeTTL   time.Duration
}

func NewServices(cfg ServicesConfig) *Services {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Services{
		stores:      cfg.Stores,
		attachments: cfg.Attachments,
		txRunner:    cfg.TxRunner,
		notifier:    cfg.Notifier,
		clock:       clock,
		orgDomain:   cfg.OrgDomain,
		codes:       cfg.Codes,
		tokens:      cfg.Tokens,
		directory:   cfg.Directory,
		composer:    cfg.Composer,
		outbox:      cfg.Outbox,
		codeTTL:     cfg.CodeTTL,
	}
}

func (s *Services) PricingRequests() PricingRequestService {
	return NewPricingRequestService(s.stores.PricingRequests(), s.attachments, s.notifier, s.clock, s.orgDomain)
}

func (s *Services) Decisions() DecisionService {
	return NewDecisionService(s.txRunner, s.notifier, s.clock)
}

func (s *Services) Comments() CommentService {
	return NewCommentService(s.stores.PricingRequests(), s.stores.Comments(), s.notifier, s.clock)
}

func (s *Services) Notifications() NotificationService {
	return NewNotificationService(s.stores.Notifications())
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.codes, s.tokens, s.directory, s.composer, s.outbox, s.codeTTL)
}
