package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/http/middleware"
)

var _ = Describe("RateLimiter", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = gin.New()
		router.POST("/codes", middleware.NewRateLimiter(2).Middleware(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/codes", nil)
		req.RemoteAddr = ip + ":4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("throttles a client after its burst", func() {
		Expect(send("10.0.0.1").Code).To(Equal(http.StatusOK))
		Expect(send("10.0.0.1").Code).To(Equal(http.StatusOK))

		w := send("10.0.0.1")
		Expect(w.Code).To(Equal(http.StatusTooManyRequests))
		retry, err := strconv.Atoi(w.Header().Get("Retry-After"))
		Expect(err).NotTo(HaveOccurred())
		Expect(retry).To(BeNumerically(">", 0))
	})

	It("keeps separate buckets per client", func() {
		send("10.0.0.1")
		send("10.0.0.1")
		Expect(send("10.0.0.1").Code).To(Equal(http.StatusTooManyRequests))
		Expect(send("10.0.0.2").Code).To(Equal(http.StatusOK))
	})
})
