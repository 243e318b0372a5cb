package model_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/model"
)

var _ = Describe("PricingRequest", func() {
	ptr := func(s string) *string { return &s }

	DescribeTable("RequestStatus.IsValid",
		func(s model.RequestStatus, valid bool) {
			Expect(s.IsValid()).To(Equal(valid))
		},
		Entry("under review", model.RequestStatusUnderReviewPL, true),
		Entry("escalated", model.RequestStatusEscalatedToVP, true),
		Entry("back to commercial", model.RequestStatusBackToCommercial, true),
		Entry("closed", model.RequestStatusClosed, true),
		Entry("draft is not a workflow state", model.RequestStatus("DRAFT"), false),
		Entry("lower case", model.RequestStatus("closed"), false),
		Entry("empty", model.RequestStatus(""), false),
	)

	Describe("AuthorRole", func() {
		var req *model.PricingRequest

		BeforeEach(func() {
			req = &model.PricingRequest{
				RequesterEmail: "sales@avocarbon.com",
				PLEmail:        "pl@avocarbon.com",
				VPEmail:        ptr("vp@avocarbon.com"),
			}
		})

		It("returns PL for the product line responsible", func() {
			Expect(model.AuthorRole(req, "pl@avocarbon.com")).To(Equal(model.RolePL))
		})

		It("matches emails case-insensitively", func() {
			Expect(model.AuthorRole(req, "  VP@AvoCarbon.com ")).To(Equal(model.RoleVP))
		})

		It("prefers PL when the same person is PL and VP", func() {
			req.VPEmail = ptr("pl@avocarbon.com")
			Expect(model.AuthorRole(req, "pl@avocarbon.com")).To(Equal(model.RolePL))
		})

		It("returns COMMERCIAL for the requester and for strangers", func() {
			Expect(model.AuthorRole(req, "sales@avocarbon.com")).To(Equal(model.RoleCommercial))
			Expect(model.AuthorRole(req, "someone@avocarbon.com")).To(Equal(model.RoleCommercial))
		})

		It("returns COMMERCIAL when no VP is set", func() {
			req.VPEmail = nil
			Expect(model.AuthorRole(req, "vp@avocarbon.com")).To(Equal(model.RoleCommercial))
		})
	})

	Describe("status predicates", func() {
		DescribeTable("IsTerminal",
			func(s model.RequestStatus, terminal bool) {
				Expect(s.IsTerminal()).To(Equal(terminal))
			},
			Entry("under review", model.RequestStatusUnderReviewPL, false),
			Entry("escalated", model.RequestStatusEscalatedToVP, false),
			Entry("approved by PL", model.RequestStatusApprovedByPL, true),
			Entry("rejected by PL", model.RequestStatusRejectedByPL, true),
			Entry("approved by VP", model.RequestStatusApprovedByVP, true),
			Entry("rejected by VP", model.RequestStatusRejectedByVP, true),
			Entry("closed", model.RequestStatusClosed, true),
		)

		DescribeTable("IsVPEngaged",
			func(s model.RequestStatus, engaged bool) {
				Expect(s.IsVPEngaged()).To(Equal(engaged))
			},
			Entry("under review", model.RequestStatusUnderReviewPL, false),
			Entry("approved by PL", model.RequestStatusApprovedByPL, false),
			Entry("escalated", model.RequestStatusEscalatedToVP, true),
			Entry("approved by VP", model.RequestStatusApprovedByVP, true),
			Entry("rejected by VP", model.RequestStatusRejectedByVP, true),
		)
	})

	Describe("DeviationPercent", func() {
		It("computes the relative price gap", func() {
			req := &model.PricingRequest{
				InitialPrice: decimal.RequireFromString("12.50"),
				TargetPrice:  decimal.RequireFromString("10.00"),
			}
			Expect(req.DeviationPercent().String()).To(Equal("20"))
		})

		It("is zero when the initial price is zero", func() {
			req := &model.PricingRequest{TargetPrice: decimal.NewFromInt(1)}
			Expect(req.DeviationPercent().IsZero()).To(BeTrue())
		})
	})

	Describe("ParseRole", func() {
		It("defaults unknown roles to COMMERCIAL", func() {
			Expect(model.ParseRole("ADMIN")).To(Equal(model.RoleCommercial))
			Expect(model.ParseRole("")).To(Equal(model.RoleCommercial))
			Expect(model.ParseRole("VP")).To(Equal(model.RoleVP))
		})
	})

	Describe("Party", func() {
		It("falls back to the email for display", func() {
			Expect(model.Party{Email: "a@b.com"}.DisplayName()).To(Equal("a@b.com"))
			Expect(model.Party{Email: "a@b.com", Name: ptr("Ana")}.DisplayName()).To(Equal("Ana"))
		})
	})
})
