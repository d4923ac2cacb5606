package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"wifiscan/pkg/controller"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	tests := []struct {
		path string
		code int
	}{
		{path: controller.PprofPrefix, code: http.StatusOK},
		{path: controller.PprofPrefix + "cmdline", code: http.StatusOK},
		{path: controller.PprofPrefix + "goroutine?debug=1", code: http.StatusOK},
		{path: controller.PprofPrefix + "heap", code: http.StatusOK},
		{path: "/", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.code, rec.Code)
		})
	}
}
