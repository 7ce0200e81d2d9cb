package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/http/middleware"
)

var _ = Describe("CORS", func() {
	var handlerCalls int

	newRouter := func(origins ...string) *gin.Engine {
		gin.SetMode(gin.TestMode)
		handlerCalls = 0
		r := gin.New()
		r.Use(middleware.CORS(origins))
		r.POST("/reply", func(c *gin.Context) {
			handlerCalls++
			c.Status(http.StatusOK)
		})
		return r
	}

	preflight := func(r *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/reply", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	Context("with a wildcard allowlist", func() {
		It("answers preflights from any origin with 204", func() {
			r := newRouter("*")

			w := preflight(r, "http://localhost:5173")

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:5173"))
			Expect(w.Header().Get("Access-Control-Allow-Credentials")).To(Equal("true"))
			Expect(w.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("POST"))
			Expect(w.Header().Get("Access-Control-Allow-Headers")).To(Equal("content-type"))
			Expect(handlerCalls).To(Equal(0))
		})

		It("decorates simple requests and passes them through", func() {
			r := newRouter("*")
			req := httptest.NewRequest(http.MethodPost, "/reply", nil)
			req.Header.Set("Origin", "https://mail.example.org")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://mail.example.org"))
			Expect(w.Header().Get("Access-Control-Expose-Headers")).To(Equal(middleware.RequestIDHeader))
			Expect(handlerCalls).To(Equal(1))
		})
	})

	Context("with an explicit allowlist", func() {
		It("omits CORS headers for unknown origins", func() {
			r := newRouter("http://localhost:5173")

			w := preflight(r, "https://evil.example.com")

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})

		It("echoes listed origins", func() {
			r := newRouter("http://localhost:5173")

			w := preflight(r, "http://localhost:5173")

			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:5173"))
		})
	})

	It("leaves requests without an Origin untouched", func() {
		r := newRouter("*")
		req := httptest.NewRequest(http.MethodPost, "/reply", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
	})
})
