package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Akhil-Baki/empathetic-email-helper/common/logger"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/http/middleware"
)

var _ = Describe("RequestID", func() {
	var (
		r      *gin.Engine
		seenID string
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		seenID = ""
		r = gin.New()
		r.Use(middleware.RequestID())
		r.GET("/", func(c *gin.Context) {
			if fields := logger.GetLogFields(c.Request.Context()); fields.RequestID != nil {
				seenID = *fields.RequestID
			}
			c.Status(http.StatusOK)
		})
	})

	It("generates an id when none is supplied", func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		got := w.Header().Get(middleware.RequestIDHeader)
		Expect(got).NotTo(BeEmpty())
		Expect(seenID).To(Equal(got))
	})

	It("reuses the caller's id", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
		Expect(seenID).To(Equal("abc-123"))
	})

	It("replaces oversized ids", func() {
		long := strings.Repeat("x", 200)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, long)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		got := w.Header().Get(middleware.RequestIDHeader)
		Expect(got).NotTo(Equal(long))
		Expect(got).NotTo(BeEmpty())
	})
})
