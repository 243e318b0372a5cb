package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/auth"
	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/service"
)

var _ = Describe("AuthService", func() {
	var (
		ctx    context.Context
		codes  *memoryCodeStore
		outbox *mockOutbox
		svc    service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		codes = newMemoryCodeStore()
		outbox = &mockOutbox{}
		tokens, err := auth.NewTokens("0123456789abcdef0123", time.Hour, clockwork.NewRealClock())
		Expect(err).NotTo(HaveOccurred())
		composer, err := email.NewComposer("http://localhost:5173")
		Expect(err).NotTo(HaveOccurred())
		svc = service.NewAuthService(
			codes,
			tokens,
			mapDirectory{"pl@avocarbon.com": "Paul LEGRAND"},
			composer,
			outbox,
			5*time.Minute,
		)
	})

	It("stores a code bound to the role and mails it", func() {
		addr, role, err := svc.SendCode(ctx, " PL@AvoCarbon.com ", "pl")
		Expect(err).NotTo(HaveOccurred())
		Expect(addr).To(Equal("pl@avocarbon.com"))
		Expect(role).To(Equal(model.RolePL))

		Expect(codes.codes).To(HaveKey("pl@avocarbon.com"))
		Expect(codes.ttls["pl@avocarbon.com"]).To(Equal(5 * time.Minute))
		Expect(outbox.messages).To(HaveLen(1))
		Expect(outbox.messages[0].To).To(Equal("pl@avocarbon.com"))
		Expect(outbox.messages[0].HTML).To(ContainSubstring(codes.codes["pl@avocarbon.com"].Code))
	})

	It("falls back to COMMERCIAL for unknown roles", func() {
		_, role, err := svc.SendCode(ctx, "bob@avocarbon.com", "ADMIN")
		Expect(err).NotTo(HaveOccurred())
		Expect(role).To(Equal(model.RoleCommercial))
	})

	It("still succeeds when the email cannot be queued", func() {
		outbox.err = errors.New("redis down")
		_, _, err := svc.SendCode(ctx, "bob@avocarbon.com", "COMMERCIAL")
		Expect(err).NotTo(HaveOccurred())
		Expect(codes.codes).To(HaveKey("bob@avocarbon.com"))
	})

	It("fails when the code cannot be stored", func() {
		codes.putErr = errors.New("redis down")
		_, _, err := svc.SendCode(ctx, "bob@avocarbon.com", "COMMERCIAL")
		Expect(err).To(HaveOccurred())
		Expect(outbox.messages).To(BeEmpty())
	})

	Describe("VerifyCode", func() {
		var code string

		BeforeEach(func() {
			_, _, err := svc.SendCode(ctx, "pl@avocarbon.com", "PL")
			Expect(err).NotTo(HaveOccurred())
			code = codes.codes["pl@avocarbon.com"].Code
		})

		It("issues a token and consumes the code", func() {
			sess, err := svc.VerifyCode(ctx, "PL@avocarbon.com", " "+code+" ", "pl")
			Expect(err).NotTo(HaveOccurred())
			Expect(sess.Identity).To(Equal(model.Identity{Email: "pl@avocarbon.com", Name: "Paul LEGRAND", Role: model.RolePL}))
			Expect(sess.Token).NotTo(BeEmpty())
			Expect(codes.codes).NotTo(HaveKey("pl@avocarbon.com"))

			id, err := svc.Authenticate(ctx, sess.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(sess.Identity))

			_, err = svc.VerifyCode(ctx, "pl@avocarbon.com", code, "PL")
			Expect(err).To(MatchError(service.ErrNoCodeSent))
		})

		It("rejects a wrong code and keeps it pending", func() {
			wrong := "000000"
			if code == wrong {
				wrong = "111111"
			}
			_, err := svc.VerifyCode(ctx, "pl@avocarbon.com", wrong, "PL")
			Expect(err).To(MatchError(service.ErrInvalidCode))
			Expect(codes.codes).To(HaveKey("pl@avocarbon.com"))
		})

		It("rejects a role mismatch", func() {
			_, err := svc.VerifyCode(ctx, "pl@avocarbon.com", code, "VP")
			Expect(err).To(MatchError(service.ErrRoleMismatch))
		})

		It("names unknown users after their mailbox", func() {
			_, _, err := svc.SendCode(ctx, "bob@avocarbon.com", "COMMERCIAL")
			Expect(err).NotTo(HaveOccurred())
			sess, err := svc.VerifyCode(ctx, "bob@avocarbon.com", codes.codes["bob@avocarbon.com"].Code, "COMMERCIAL")
			Expect(err).NotTo(HaveOccurred())
			Expect(sess.Identity.Name).To(Equal("bob"))
		})
	})

	It("rejects garbage tokens", func() {
		_, err := svc.Authenticate(ctx, "not-a-token")
		Expect(errors.Is(err, auth.ErrInvalidToken)).To(BeTrue())
	})
})
