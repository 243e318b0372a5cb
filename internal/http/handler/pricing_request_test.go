package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/http/handler"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/store"
	"pricingdesk.app/server/internal/workflow"
)

var _ = Describe("PricingRequestHandler", func() {
	var (
		router *gin.Engine
		svc    *mockPricingRequestService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockPricingRequestService{}
		h := handler.NewPricingRequestHandler(svc)
		rg := router.Group("", asCaller(model.Identity{Email: "pl@avocarbon.com", Role: model.RolePL}))
		rg.POST("/pricing-requests", h.Submit)
		rg.GET("/pricing-requests", h.List)
		rg.GET("/pricing-requests/mine", h.Mine)
		rg.GET("/pricing-requests/:id", h.Get)
		rg.GET("/pl/inbox", h.PLInbox)
	})

	submitBody := func() []byte {
		body, _ := json.Marshal(map[string]any{
			"costing_number":   "CN-1",
			"project_name":     "Brush",
			"customer":         "Customer A",
			"product_line":     "brushes",
			"plant":            "Poitiers",
			"yearly_sales":     "1000",
			"initial_price":    10,
			"target_price":     "9.5",
			"problem_to_solve": "competition",
			"requester_email":  "alice@avocarbon.com",
			"requester_name":   "Alice",
			"pl_email":         "pl@avocarbon.com",
		})
		return body
	}

	post := func(body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/pricing-requests", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns 201 with the new request id", func() {
		svc.submitFn = func(_ context.Context, s model.Submission) (*model.PricingRequest, error) {
			Expect(s.InitialPrice.Equal(decimal.NewFromInt(10))).To(BeTrue())
			Expect(s.TargetPrice.String()).To(Equal("9.5"))
			return &model.PricingRequest{ID: 1234567890123, CostingNumber: s.CostingNumber, Status: model.RequestStatusUnderReviewPL}, nil
		}

		w := post(submitBody())

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("1234567890123"))
		Expect(resp["status"]).To(Equal("UNDER_REVIEW_PL"))
	})

	It("returns 400 with the failing field on validation errors", func() {
		svc.submitFn = func(context.Context, model.Submission) (*model.PricingRequest, error) {
			return nil, workflow.DuplicateCostingNumber("CN-1")
		}

		w := post(submitBody())

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["field"]).To(Equal("costing_number"))
		Expect(resp["error"]).To(ContainSubstring("CN-1"))
	})

	It("returns 400 when required fields are missing", func() {
		w := post([]byte(`{"costing_number":"CN-1"}`))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 when the service fails unexpectedly", func() {
		svc.submitFn = func(context.Context, model.Submission) (*model.PricingRequest, error) {
			return nil, errors.New("boom")
		}
		w := post(submitBody())
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})

	It("returns 404 for an unknown request", func() {
		svc.getFn = func(context.Context, int64) (*model.PricingRequest, error) {
			return nil, fmt.Errorf("getting pricing request: %w", store.ErrNotFound)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pricing-requests/77", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 400 for a malformed id", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pricing-requests/abc", nil))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("passes list filters through", func() {
		svc.listFn = func(_ context.Context, f model.RequestFilter, limit, offset int32) ([]model.PricingRequest, error) {
			Expect(*f.Status).To(Equal(model.RequestStatusEscalatedToVP))
			Expect(*f.ProductLine).To(Equal("seals"))
			Expect(f.RequesterEmail).To(BeNil())
			Expect(limit).To(Equal(int32(20)))
			Expect(offset).To(Equal(int32(40)))
			return []model.PricingRequest{{ID: 1, Status: model.RequestStatusEscalatedToVP}}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pricing-requests?status=ESCALATED_TO_VP&product_line=seals&limit=20&offset=40", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
	})

	It("rejects an unknown status filter", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pricing-requests?status=PENDING", nil))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("lists the caller's own requests", func() {
		svc.listByRequesterFn = func(_ context.Context, email string) ([]model.PricingRequest, error) {
			Expect(email).To(Equal("pl@avocarbon.com"))
			return nil, nil
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pricing-requests/mine", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("[]"))
	})

	It("serves the PL inbox for the caller", func() {
		svc.plInboxFn = func(_ context.Context, email string, archived bool) ([]model.PricingRequest, error) {
			Expect(email).To(Equal("pl@avocarbon.com"))
			Expect(archived).To(BeTrue())
			return []model.PricingRequest{{ID: 2}}, nil
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pl/inbox?archived=true", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
	})
})
