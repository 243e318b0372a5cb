package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/queue"
	"pricingdesk.app/server/internal/worker"
)

func outboxMessage(id string, attempt int) queue.Message {
	return queue.Message{
		ID:      id,
		Attempt: attempt,
		Email: email.Message{
			Kind:    email.KindPLDecision,
			To:      "sales@avocarbon.com",
			Subject: "Decision",
			HTML:    "<p>ok</p>",
		},
	}
}

var _ = Describe("Worker", func() {
	var (
		ctx      context.Context
		consumer *mockConsumer
		sender   *mockSender
		w        *worker.Worker
	)

	BeforeEach(func() {
		ctx = context.Background()
		consumer = &mockConsumer{}
		sender = &mockSender{}
		w = worker.New(consumer, sender, worker.Config{MaxAttempts: 3})
	})

	Describe("Handle", func() {
		It("acks after a successful send", func() {
			Expect(w.Handle(ctx, outboxMessage("1-0", 1))).To(Succeed())

			acked, requeued, dlq := consumer.snapshot()
			Expect(acked).To(Equal([]string{"1-0"}))
			Expect(requeued).To(BeEmpty())
			Expect(dlq).To(BeEmpty())
		})

		It("requeues a failed send below the attempt limit", func() {
			sender.sendFn = func(context.Context, email.Message) error { return errors.New("421 try later") }

			Expect(w.Handle(ctx, outboxMessage("2-0", 2))).To(HaveOccurred())

			acked, requeued, dlq := consumer.snapshot()
			Expect(acked).To(BeEmpty())
			Expect(requeued).To(Equal([]string{"2-0"}))
			Expect(dlq).To(BeEmpty())
			Expect(consumer.lastError).To(Equal("421 try later"))
		})

		It("dead-letters once the attempt limit is reached", func() {
			sender.sendFn = func(context.Context, email.Message) error { return errors.New("550 no such user") }

			Expect(w.Handle(ctx, outboxMessage("3-0", 3))).To(HaveOccurred())

			_, requeued, dlq := consumer.snapshot()
			Expect(requeued).To(BeEmpty())
			Expect(dlq).To(Equal([]string{"3-0"}))
		})

		It("recovers from a panicking sender", func() {
			sender.sendFn = func(context.Context, email.Message) error { panic("boom") }

			err := w.Handle(ctx, outboxMessage("4-0", 1))

			Expect(err).To(MatchError(ContainSubstring("panic: boom")))
			_, requeued, _ := consumer.snapshot()
			Expect(requeued).To(Equal([]string{"4-0"}))
		})
	})

	Describe("Run", func() {
		It("processes batches until stopped", func() {
			var reads atomic.Int32
			consumer.readFn = func(context.Context) ([]queue.Message, error) {
				if reads.Add(1) == 1 {
					return []queue.Message{outboxMessage("5-0", 1), outboxMessage("5-1", 1)}, nil
				}
				time.Sleep(5 * time.Millisecond)
				return nil, nil
			}

			done := make(chan error, 1)
			go func() { done <- w.Run(ctx) }()

			Eventually(func() []string {
				acked, _, _ := consumer.snapshot()
				return acked
			}).Should(Equal([]string{"5-0", "5-1"}))

			w.Stop()
			Eventually(done).Should(Receive(BeNil()))
		})

		It("returns when the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			consumer.readFn = func(context.Context) ([]queue.Message, error) {
				return nil, errors.New("redis unavailable")
			}
			w = worker.New(consumer, sender, worker.Config{ErrorBackoff: 10 * time.Millisecond})

			done := make(chan error, 1)
			go func() { done <- w.Run(cctx) }()
			cancel()

			Eventually(done).Should(Receive(MatchError(context.Canceled)))
		})
	})
})
