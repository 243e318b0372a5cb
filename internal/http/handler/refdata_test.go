package handler_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/http/handler"
	"pricingdesk.app/server/internal/refdata"
)

var _ = Describe("RefDataHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		data, err := refdata.Parse([]byte(`
product_lines: [brushes]
plants: [Poitiers]
users:
  VP:
    - name: Vic
      email: VP@avocarbon.com
`))
		Expect(err).NotTo(HaveOccurred())

		h := handler.NewRefDataHandler(data)
		router = gin.New()
		router.GET("/dropdowns", h.All)
		router.GET("/users/:role", h.UsersByRole)
	})

	It("serves dropdowns with placeholder customers", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dropdowns", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"product_lines":["brushes"],"plants":["Poitiers"],"customers":["Customer A","Customer B","Customer C"]}`))
	})

	It("lists users by role case-insensitively", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/vp", nil))
		Expect(w.Body.String()).To(MatchJSON(`[{"name":"Vic","email":"vp@avocarbon.com"}]`))
	})

	It("returns an empty list for unknown roles", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/CFO", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("[]"))
	})
})
