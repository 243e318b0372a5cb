package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/http/handler"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockAuthService{}
		h := handler.NewAuthHandler(svc)
		router.POST("/auth/send-verification-code", h.SendCode)
		router.POST("/auth/verify-code", h.VerifyCode)
		router.GET("/auth/me", h.Me)
		router.GET("/auth/me-as-vp", asCaller(model.Identity{Email: "vp@avocarbon.com", Name: "Vic", Role: model.RoleVP}), h.Me)
	})

	postJSON := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("sends a code and echoes the resolved role", func() {
		svc.sendCodeFn = func(_ context.Context, email, role string) (string, model.Role, error) {
			Expect(role).To(Equal("boss"))
			return "alice@avocarbon.com", model.RoleCommercial, nil
		}

		w := postJSON("/auth/send-verification-code", `{"email":"Alice@avocarbon.com","role":"boss"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"message":"Verification code sent to email","email":"alice@avocarbon.com","role":"COMMERCIAL"}`))
	})

	It("rejects a malformed email", func() {
		w := postJSON("/auth/send-verification-code", `{"email":"nope"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns a session on a valid code", func() {
		expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		svc.verifyCodeFn = func(_ context.Context, email, code, role string) (*service.Session, error) {
			Expect(code).To(Equal("123456"))
			return &service.Session{
				Identity:  model.Identity{Email: email, Name: "Pat", Role: model.RolePL},
				Token:     "tok",
				ExpiresAt: expires,
			}, nil
		}

		w := postJSON("/auth/verify-code", `{"email":"pl@avocarbon.com","code":"123456","role":"PL"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["token"]).To(Equal("tok"))
		Expect(resp["role"]).To(Equal("PL"))
		Expect(resp["name"]).To(Equal("Pat"))
	})

	DescribeTable("maps verification failures to 400",
		func(err error) {
			svc.verifyCodeFn = func(context.Context, string, string, string) (*service.Session, error) {
				return nil, err
			}
			w := postJSON("/auth/verify-code", `{"email":"pl@avocarbon.com","code":"000000","role":"PL"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring(err.Error()))
		},
		Entry("no code", service.ErrNoCodeSent),
		Entry("wrong code", service.ErrInvalidCode),
		Entry("wrong role", service.ErrRoleMismatch),
	)

	It("returns the caller identity", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me-as-vp", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"email":"vp@avocarbon.com","name":"Vic","role":"VP"}`))
	})

	It("returns 401 without an identity", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})
