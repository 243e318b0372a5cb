package service_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/service"
	"pricingdesk.app/server/internal/store"
	"pricingdesk.app/server/internal/workflow"
)

var _ = Describe("CommentService", func() {
	var (
		ctx      context.Context
		requests *mockPricingRequestStore
		comments *mockCommentStore
		notifier *mockNotifier
		svc      service.CommentService
		req      *model.PricingRequest
	)

	BeforeEach(func() {
		ctx = context.Background()
		req = &model.PricingRequest{
			ID:             3,
			RequesterEmail: "alice@avocarbon.com",
			PLEmail:        "pl@avocarbon.com",
			VPEmail:        strPtr("vp@avocarbon.com"),
			Status:         model.RequestStatusEscalatedToVP,
		}
		requests = &mockPricingRequestStore{
			getByIDFn: func(_ context.Context, id int64) (*model.PricingRequest, error) {
				if id == req.ID {
					return req, nil
				}
				return nil, store.ErrNotFound
			},
		}
		comments = &mockCommentStore{}
		notifier = &mockNotifier{}
		clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))
		svc = service.NewCommentService(requests, comments, notifier, clock)
	})

	Describe("Create", func() {
		It("derives the author role from the request parties", func() {
			c, err := svc.Create(ctx, 3, model.Party{Email: "VP@avocarbon.com", Name: strPtr("Victor")}, "  looks fine ")
			Expect(err).NotTo(HaveOccurred())

			Expect(c.AuthorRole).To(Equal(model.RoleVP))
			Expect(c.AuthorEmail).To(Equal("vp@avocarbon.com"))
			Expect(c.AuthorName).To(Equal("Victor"))
			Expect(c.Content).To(Equal("looks fine"))
			Expect(notifier.commented).To(ConsistOf(c))
		})

		It("defaults unknown authors to COMMERCIAL", func() {
			c, err := svc.Create(ctx, 3, model.Party{Email: "bob@avocarbon.com"}, "hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.AuthorRole).To(Equal(model.RoleCommercial))
			Expect(c.AuthorName).To(Equal("bob@avocarbon.com"))
		})

		It("rejects empty content", func() {
			_, err := svc.Create(ctx, 3, model.Party{Email: "bob@avocarbon.com"}, "   ")
			var verr *workflow.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("content"))
		})

		It("rejects overly long content", func() {
			_, err := svc.Create(ctx, 3, model.Party{Email: "bob@avocarbon.com"}, strings.Repeat("x", 5001))
			Expect(errors.Is(err, workflow.ErrFieldTooLong)).To(BeTrue())
		})

		It("returns not found for an unknown request", func() {
			_, err := svc.Create(ctx, 404, model.Party{Email: "bob@avocarbon.com"}, "hi")
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
			Expect(notifier.commented).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			comments.getByIDFn = func(_ context.Context, id int64) (*model.Comment, error) {
				return &model.Comment{ID: id, AuthorEmail: "alice@avocarbon.com"}, nil
			}
		})

		It("lets the author delete", func() {
			Expect(svc.Delete(ctx, 5, "Alice@avocarbon.com")).To(Succeed())
			Expect(comments.deleteCalls).To(Equal(1))
		})

		It("forbids anyone else", func() {
			err := svc.Delete(ctx, 5, "pl@avocarbon.com")
			Expect(err).To(MatchError(service.ErrNotCommentAuthor))
			Expect(comments.deleteCalls).To(BeZero())
		})
	})

	It("hides archived comments unless asked", func() {
		comments.listByRequestFn = func(_ context.Context, requestID int64, includeArchived bool) ([]model.Comment, error) {
			Expect(requestID).To(Equal(int64(3)))
			Expect(includeArchived).To(BeFalse())
			return []model.Comment{{ID: 1}}, nil
		}
		cs, err := svc.List(ctx, 3, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(cs).To(HaveLen(1))
	})

	It("archives through the store", func() {
		comments.setArchivedFn = func(_ context.Context, id int64, archived bool) (*model.Comment, error) {
			return &model.Comment{ID: id, Archived: archived}, nil
		}
		c, err := svc.SetArchived(ctx, 9, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Archived).To(BeTrue())
	})
})
