package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/http/handler"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/store"
)

var _ = Describe("NotificationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockNotificationService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockNotificationService{}
		h := handler.NewNotificationHandler(svc)
		rg := router.Group("", asCaller(model.Identity{Email: "alice@avocarbon.com", Role: model.RoleCommercial}))
		rg.GET("/notifications", h.List)
		rg.GET("/notifications/unread-count", h.UnreadCount)
		rg.PATCH("/notifications/read-all", h.MarkAllRead)
		rg.PATCH("/notifications/:id/read", h.MarkRead)
		rg.DELETE("/notifications/:id", h.Delete)
	})

	It("lists the caller's notifications", func() {
		svc.listFn = func(_ context.Context, email string) ([]model.Notification, error) {
			Expect(email).To(Equal("alice@avocarbon.com"))
			return []model.Notification{{ID: 1, Type: model.NotificationTypePLApproved}}, nil
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"notification_type":"PL_APPROVED"`))
	})

	It("returns the unread count", func() {
		svc.unreadFn = func(context.Context, string) (int64, error) { return 3, nil }
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))
		Expect(w.Body.String()).To(MatchJSON(`{"count":3}`))
	})

	It("marks one as read", func() {
		svc.setReadFn = func(_ context.Context, id int64, _ string, read bool) (*model.Notification, error) {
			Expect(read).To(BeTrue())
			return &model.Notification{ID: id, IsRead: true}, nil
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/notifications/8/read", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("marks all as read", func() {
		svc.markAllReadFn = func(context.Context, string) (int64, error) { return 5, nil }
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/notifications/read-all", nil))
		Expect(w.Body.String()).To(MatchJSON(`{"message":"All notifications marked as read","updated":5}`))
	})

	It("returns 404 for another user's notification", func() {
		svc.deleteFn = func(context.Context, int64, string) error { return store.ErrNotFound }
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications/8", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
