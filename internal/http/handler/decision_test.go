package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/http/handler"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/service"
	"pricingdesk.app/server/internal/workflow"
)

var _ = Describe("DecisionHandler", func() {
	var (
		router *gin.Engine
		svc    *mockDecisionService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockDecisionService{}
		router.POST("/pl/:id", handler.NewDecisionHandler(svc, model.RolePL).Decide)
		router.POST("/vp/:id", handler.NewDecisionHandler(svc, model.RoleVP).Decide)
	})

	decide := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns the decision result", func() {
		price := decimal.RequireFromString("9.25")
		svc.decideFn = func(_ context.Context, id int64, role model.Role, d model.Decision) (*service.DecisionResult, error) {
			Expect(id).To(Equal(int64(5)))
			Expect(role).To(Equal(model.RolePL))
			Expect(d.Action).To(Equal(model.ActionApprove))
			Expect(d.SuggestedPrice.Equal(price)).To(BeTrue())
			return &service.DecisionResult{
				Message:    "Product Line decision processed: APPROVE",
				RequestID:  5,
				Status:     model.RequestStatusApprovedByPL,
				FinalPrice: &price,
			}, nil
		}

		w := decide("/pl/5", `{"action":"APPROVE","suggested_price":9.25}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["status"]).To(Equal("APPROVED_BY_PL"))
		Expect(resp["request_id"]).To(Equal("5"))
		Expect(resp["final_price"]).To(Equal("9.25"))
	})

	It("routes the VP role", func() {
		svc.decideFn = func(_ context.Context, _ int64, role model.Role, _ model.Decision) (*service.DecisionResult, error) {
			Expect(role).To(Equal(model.RoleVP))
			return &service.DecisionResult{RequestID: 5, Status: model.RequestStatusRejectedByVP}, nil
		}
		w := decide("/vp/5", `{"action":"REJECT","comments":"no"}`)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).NotTo(ContainSubstring("final_price"))
	})

	It("rejects unknown actions before calling the service", func() {
		w := decide("/pl/5", `{"action":"MAYBE"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("reports the current status on invalid transitions", func() {
		svc.decideFn = func(context.Context, int64, model.Role, model.Decision) (*service.DecisionResult, error) {
			return nil, &workflow.InvalidTransitionError{Current: model.RequestStatusApprovedByPL, Role: model.RolePL, Action: model.ActionApprove}
		}

		w := decide("/pl/5", `{"action":"APPROVE"}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("current status: APPROVED_BY_PL"))
	})

	It("returns 400 when no VP can be escalated to", func() {
		svc.decideFn = func(context.Context, int64, model.Role, model.Decision) (*service.DecisionResult, error) {
			return nil, workflow.ErrMissingEscalationTarget
		}
		w := decide("/pl/5", `{"action":"ESCALATE","comments":"help"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("Cannot escalate"))
	})
})
