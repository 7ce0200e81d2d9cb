package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Akhil-Baki/empathetic-email-helper/internal/http/middleware"
)

var _ = Describe("Recovery", func() {
	It("converts a panic into a 500 error envelope", func() {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.Recovery(), middleware.Logger())
		r.GET("/boom", func(_ *gin.Context) {
			panic("kaboom")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"error": "internal server error"}`))
	})
})
