package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/internal/http/handler"
	"pricingdesk.app/server/internal/store"
)

var _ = Describe("AttachmentHandler", func() {
	var (
		router *gin.Engine
		dir    string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		s, err := store.NewLocalAttachmentStore(dir, 64)
		Expect(err).NotTo(HaveOccurred())

		router = gin.New()
		h := handler.NewAttachmentHandler(s, 64)
		router.POST("/attachments", h.Upload)
		router.GET("/attachments/*path", h.Download)
	})

	upload := func(name string, content []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		fw, err := mw.CreateFormFile("file", name)
		Expect(err).NotTo(HaveOccurred())
		_, err = fw.Write(content)
		Expect(err).NotTo(HaveOccurred())
		Expect(mw.Close()).To(Succeed())

		req := httptest.NewRequest(http.MethodPost, "/attachments", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("stores an upload and serves it back", func() {
		w := upload("Quote Sheet.pdf", []byte("%PDF-1.4 quote"))
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		saved := resp["saved_path"].(string)
		Expect(saved).To(HavePrefix("quote-sheet-"))
		Expect(saved).To(HaveSuffix(".pdf"))
		Expect(resp["size"]).To(BeNumerically("==", 14))
		Expect(filepath.Join(dir, saved)).To(BeAnExistingFile())

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attachments/"+saved, nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal("application/pdf"))
		Expect(w.Body.String()).To(Equal("%PDF-1.4 quote"))
	})

	It("rejects files over the limit with 413", func() {
		w := upload("big.bin", bytes.Repeat([]byte("x"), 65))
		Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("rejects empty files", func() {
		w := upload("empty.txt", nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for a missing attachment", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attachments/nothing.pdf", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("refuses paths escaping the upload directory", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attachments/..%2Fsecret.txt", nil))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
