package workflow_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/workflow"
)

var _ = Describe("Next", func() {
	DescribeTable("legal transitions",
		func(from model.RequestStatus, role model.Role, action model.Action, to model.RequestStatus) {
			got, err := workflow.Next(from, role, action)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(to))
		},
		Entry("PL approve", model.RequestStatusUnderReviewPL, model.RolePL, model.ActionApprove, model.RequestStatusApprovedByPL),
		Entry("PL reject", model.RequestStatusUnderReviewPL, model.RolePL, model.ActionReject, model.RequestStatusRejectedByPL),
		Entry("PL escalate", model.RequestStatusUnderReviewPL, model.RolePL, model.ActionEscalate, model.RequestStatusEscalatedToVP),
		Entry("VP approve", model.RequestStatusEscalatedToVP, model.RoleVP, model.ActionApprove, model.RequestStatusApprovedByVP),
		Entry("VP reject", model.RequestStatusEscalatedToVP, model.RoleVP, model.ActionReject, model.RequestStatusRejectedByVP),
	)

	It("has no outgoing transitions from terminal states", func() {
		terminal := []model.RequestStatus{
			model.RequestStatusApprovedByPL, model.RequestStatusRejectedByPL,
			model.RequestStatusApprovedByVP, model.RequestStatusRejectedByVP,
			model.RequestStatusClosed,
		}
		for _, s := range terminal {
			for _, role := range []model.Role{model.RolePL, model.RoleVP} {
				for _, action := range []model.Action{model.ActionApprove, model.ActionReject} {
					_, err := workflow.Next(s, role, action)
					Expect(errors.Is(err, workflow.ErrInvalidTransition)).To(BeTrue(), "%s %s %s", s, role, action)
				}
			}
		}
	})

	It("rejects commercial decisions outright", func() {
		_, err := workflow.Next(model.RequestStatusUnderReviewPL, model.RoleCommercial, model.ActionApprove)
		Expect(errors.Is(err, workflow.ErrInvalidAction)).To(BeTrue())
	})

	It("carries the current state in the error", func() {
		_, err := workflow.Next(model.RequestStatusBackToCommercial, model.RolePL, model.ActionApprove)
		var terr *workflow.InvalidTransitionError
		Expect(errors.As(err, &terr)).To(BeTrue())
		Expect(terr.Current).To(Equal(model.RequestStatusBackToCommercial))
	})
})
