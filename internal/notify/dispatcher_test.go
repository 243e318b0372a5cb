package notify_test

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/notify"
)

type fakeWriter struct {
	created []*model.Notification
	failFor string
}

func (f *fakeWriter) Create(_ context.Context, n *model.Notification) error {
	if n.RecipientEmail == f.failFor {
		return errors.New("insert failed")
	}
	f.created = append(f.created, n)
	return nil
}

type fakeOutbox struct {
	sent []email.Message
	err  error
}

func (f *fakeOutbox) Enqueue(_ context.Context, msg email.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

var _ = Describe("Dispatcher", func() {
	var (
		ctx        context.Context
		writer     *fakeWriter
		outbox     *fakeOutbox
		clock      *clockwork.FakeClock
		dispatcher *notify.Dispatcher
	)

	BeforeEach(func() {
		ctx = context.Background()
		writer = &fakeWriter{}
		outbox = &fakeOutbox{}
		clock = clockwork.NewFakeClockAt(time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC))

		composer, err := email.NewComposer("https://pricing.example.com")
		Expect(err).NotTo(HaveOccurred())
		dispatcher = notify.NewDispatcher(writer, outbox, composer, clock)
	})

	It("stores a notification and emails the PL on submission", func() {
		dispatcher.Submitted(ctx, newRequest(model.RequestStatusUnderReviewPL))

		Expect(writer.created).To(HaveLen(1))
		Expect(writer.created[0].ID).NotTo(BeZero())
		Expect(writer.created[0].CreatedAt).To(BeTemporally("==", clock.Now()))
		Expect(outbox.sent).To(HaveLen(1))
		Expect(outbox.sent[0].Kind).To(Equal(email.KindRequestSubmitted))
		Expect(outbox.sent[0].To).To(Equal("pl@avocarbon.com"))
	})

	It("emails the VP with PL context on escalation", func() {
		req := newRequest(model.RequestStatusEscalatedToVP)
		req.PLComments = strPtr("Key account")

		dispatcher.Transitioned(ctx, req, &model.TransitionEvent{Role: model.RolePL, Action: model.ActionEscalate})

		Expect(writer.created).To(HaveLen(1))
		Expect(writer.created[0].RecipientEmail).To(Equal("vp@avocarbon.com"))
		Expect(outbox.sent).To(HaveLen(1))
		Expect(outbox.sent[0].Kind).To(Equal(email.KindEscalation))
		Expect(outbox.sent[0].HTML).To(ContainSubstring("Key account"))
	})

	It("emails the requester on a VP decision", func() {
		dispatcher.Transitioned(ctx, newRequest(model.RequestStatusRejectedByVP),
			&model.TransitionEvent{Role: model.RoleVP, Action: model.ActionReject})

		Expect(outbox.sent).To(HaveLen(1))
		Expect(outbox.sent[0].Kind).To(Equal(email.KindVPDecision))
		Expect(outbox.sent[0].To).To(Equal("sales@avocarbon.com"))
	})

	It("keeps going when one recipient fails", func() {
		writer.failFor = "pl@avocarbon.com"
		req := newRequest(model.RequestStatusEscalatedToVP)

		dispatcher.Commented(ctx, req, &model.Comment{
			ID: 1, AuthorEmail: "sales@avocarbon.com", AuthorRole: model.RoleCommercial, Content: "ping",
		})

		Expect(writer.created).To(HaveLen(1))
		Expect(writer.created[0].RecipientEmail).To(Equal("vp@avocarbon.com"))
		Expect(outbox.sent).To(BeEmpty())
	})

	It("swallows outbox failures", func() {
		outbox.err = errors.New("redis down")

		Expect(func() {
			dispatcher.Submitted(ctx, newRequest(model.RequestStatusUnderReviewPL))
		}).NotTo(Panic())
		Expect(writer.created).To(HaveLen(1))
	})
})
