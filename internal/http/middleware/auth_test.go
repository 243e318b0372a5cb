package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/http/middleware"
	"pricingdesk.app/server/internal/model"
)

type tokenTable map[string]model.Identity

func (t tokenTable) Authenticate(_ context.Context, token string) (model.Identity, error) {
	id, ok := t[token]
	if !ok {
		return model.Identity{}, errors.New("unknown token")
	}
	return id, nil
}

var _ = Describe("RequireAuth", func() {
	var router *gin.Engine

	BeforeEach(func() {
		tokens := tokenTable{
			"pl-token":  {Email: "pl@avocarbon.com", Role: model.RolePL},
			"com-token": {Email: "alice@avocarbon.com", Role: model.RoleCommercial},
		}
		router = gin.New()
		authed := router.Group("", middleware.RequireAuth(tokens))
		authed.GET("/whoami", func(c *gin.Context) {
			id, _ := middleware.IdentityFrom(c.Request.Context())
			c.String(http.StatusOK, id.Email)
		})
		authed.GET("/pl-only", middleware.RequireRole(model.RolePL), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	})

	call := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("puts the identity on the request context", func() {
		w := call("/whoami", "Bearer pl-token")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("pl@avocarbon.com"))
	})

	It("accepts a lower-case scheme", func() {
		Expect(call("/whoami", "bearer pl-token").Code).To(Equal(http.StatusOK))
	})

	DescribeTable("rejects missing or bad credentials",
		func(header string) {
			Expect(call("/whoami", header).Code).To(Equal(http.StatusUnauthorized))
		},
		Entry("no header", ""),
		Entry("wrong scheme", "Basic pl-token"),
		Entry("empty token", "Bearer "),
		Entry("unknown token", "Bearer nope"),
	)

	It("forbids roles outside the allowed set", func() {
		Expect(call("/pl-only", "Bearer com-token").Code).To(Equal(http.StatusForbidden))
		Expect(call("/pl-only", "Bearer pl-token").Code).To(Equal(http.StatusOK))
	})

	It("treats RequireRole without identity as unauthenticated", func() {
		r := gin.New()
		r.GET("/x", middleware.RequireRole(model.RoleVP), func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})
