package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/service"
	"pricingdesk.app/server/internal/store"
	"pricingdesk.app/server/internal/workflow"
)

func validSubmission() model.Submission {
	return model.Submission{
		CostingNumber:  " CN-100 ",
		ProjectName:    "Brush holder",
		Customer:       "Customer A",
		ProductLine:    "brushes",
		Plant:          "Poitiers",
		YearlySales:    decimal.RequireFromString("120000"),
		InitialPrice:   decimal.RequireFromString("10.00"),
		TargetPrice:    decimal.RequireFromString("9.00"),
		ProblemToSolve: "Competitor offer",
		RequesterEmail: "Alice@AvoCarbon.com",
		RequesterName:  "Alice",
		PLEmail:        "pl@avocarbon.com",
		PLName:         strPtr("Paul"),
		VPEmail:        strPtr("  "),
	}
}

var _ = Describe("PricingRequestService", func() {
	var (
		ctx         context.Context
		requests    *mockPricingRequestStore
		notifier    *mockNotifier
		attachments *mockAttachments
		clock       *clockwork.FakeClock
		svc         service.PricingRequestService
	)

	BeforeEach(func() {
		ctx = context.Background()
		requests = &mockPricingRequestStore{}
		notifier = &mockNotifier{}
		clock = clockwork.NewFakeClockAt(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
		attachments = &mockAttachments{present: map[string]bool{"brush-1.pdf": true}}
		svc = service.NewPricingRequestService(requests, attachments, notifier, clock, "avocarbon.com")
	})

	Describe("Submit", func() {
		It("creates the request under PL review and notifies the PL", func() {
			var created *model.PricingRequest
			requests.createFn = func(_ context.Context, req *model.PricingRequest) error {
				created = req
				return nil
			}

			req, err := svc.Submit(ctx, validSubmission())
			Expect(err).NotTo(HaveOccurred())

			Expect(created).To(BeIdenticalTo(req))
			Expect(req.ID).NotTo(BeZero())
			Expect(req.Status).To(Equal(model.RequestStatusUnderReviewPL))
			Expect(req.CostingNumber).To(Equal("CN-100"))
			Expect(req.RequesterEmail).To(Equal("alice@avocarbon.com"))
			Expect(req.VPEmail).To(BeNil())
			Expect(req.CreatedAt).To(Equal(clock.Now().UTC()))
			Expect(notifier.submitted).To(ConsistOf(req))
		})

		It("rejects a costing number that already exists", func() {
			requests.getByCostingNumberFn = func(_ context.Context, cn string) (*model.PricingRequest, error) {
				Expect(cn).To(Equal("CN-100"))
				return &model.PricingRequest{ID: 1}, nil
			}

			_, err := svc.Submit(ctx, validSubmission())

			var verr *workflow.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("costing_number"))
			Expect(errors.Is(err, workflow.ErrDuplicateCostingNumber)).To(BeTrue())
			Expect(requests.createCalls).To(BeZero())
			Expect(notifier.submitted).To(BeEmpty())
		})

		It("maps a unique violation on insert to a duplicate costing number", func() {
			requests.createFn = func(context.Context, *model.PricingRequest) error {
				return store.ErrDuplicate
			}

			_, err := svc.Submit(ctx, validSubmission())
			Expect(errors.Is(err, workflow.ErrDuplicateCostingNumber)).To(BeTrue())
			Expect(notifier.submitted).To(BeEmpty())
		})

		It("rejects a target price above the initial price", func() {
			sub := validSubmission()
			sub.TargetPrice = decimal.RequireFromString("10.01")

			_, err := svc.Submit(ctx, sub)
			Expect(errors.Is(err, workflow.ErrInvalidPriceRange)).To(BeTrue())
			Expect(requests.createCalls).To(BeZero())
		})

		It("accepts an uploaded attachment", func() {
			sub := validSubmission()
			sub.AttachmentPath = strPtr("brush-1.pdf")

			req, err := svc.Submit(ctx, sub)
			Expect(err).NotTo(HaveOccurred())
			Expect(*req.AttachmentPath).To(Equal("brush-1.pdf"))
		})

		It("rejects an attachment that was never uploaded", func() {
			sub := validSubmission()
			sub.AttachmentPath = strPtr("missing.pdf")

			_, err := svc.Submit(ctx, sub)
			var verr *workflow.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("attachment_path"))
			Expect(requests.createCalls).To(BeZero())
		})

		It("rejects a requester outside the organization", func() {
			sub := validSubmission()
			sub.RequesterEmail = "alice@example.com"

			_, err := svc.Submit(ctx, sub)
			Expect(errors.Is(err, workflow.ErrEmailDomain)).To(BeTrue())
		})

		It("surfaces lookup failures", func() {
			requests.getByCostingNumberFn = func(context.Context, string) (*model.PricingRequest, error) {
				return nil, errors.New("connection reset")
			}

			_, err := svc.Submit(ctx, validSubmission())
			Expect(err).To(MatchError(ContainSubstring("checking costing number")))
		})
	})

	Describe("queries", func() {
		It("wraps not found on Get", func() {
			_, err := svc.Get(ctx, 42)
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})

		It("clamps list paging", func() {
			requests.listFn = func(_ context.Context, _ model.RequestFilter, limit, offset int32) ([]model.PricingRequest, error) {
				Expect(limit).To(Equal(int32(service.MaxListLimit)))
				Expect(offset).To(BeZero())
				return nil, nil
			}
			_, err := svc.List(ctx, model.RequestFilter{}, 10_000, -5)
			Expect(err).NotTo(HaveOccurred())
		})

		It("lists a requester's own requests by normalized email", func() {
			requests.listFn = func(_ context.Context, f model.RequestFilter, _, _ int32) ([]model.PricingRequest, error) {
				Expect(f.RequesterEmail).NotTo(BeNil())
				Expect(*f.RequesterEmail).To(Equal("alice@avocarbon.com"))
				return []model.PricingRequest{{ID: 1}}, nil
			}
			reqs, err := svc.ListByRequester(ctx, " Alice@avocarbon.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(reqs).To(HaveLen(1))
		})

		It("selects PL inbox statuses by archive flag", func() {
			var seen [][]model.RequestStatus
			requests.listByPLFn = func(_ context.Context, email string, statuses []model.RequestStatus) ([]model.PricingRequest, error) {
				Expect(email).To(Equal("pl@avocarbon.com"))
				seen = append(seen, statuses)
				return nil, nil
			}

			_, err := svc.PLInbox(ctx, "PL@avocarbon.com", false)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.PLInbox(ctx, "PL@avocarbon.com", true)
			Expect(err).NotTo(HaveOccurred())

			Expect(seen[0]).To(ConsistOf(model.RequestStatusUnderReviewPL))
			Expect(seen[1]).To(Equal(model.PLDecidedStatuses))
		})

		It("lists only escalated requests in the VP inbox", func() {
			requests.listByVPFn = func(_ context.Context, _ string, statuses []model.RequestStatus) ([]model.PricingRequest, error) {
				Expect(statuses).To(ConsistOf(model.RequestStatusEscalatedToVP))
				return nil, nil
			}
			_, err := svc.VPInbox(ctx, "vp@avocarbon.com")
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
