package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"signalbench/internal/models"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"invalid kind", fmt.Errorf("test kind: %w", models.ErrInvalidKind), http.StatusBadRequest},
		{"unique violation", fmt.Errorf("username: %w", models.ErrUniqueViolation), http.StatusConflict},
		{"state conflict", fmt.Errorf("already deleted: %w", models.ErrStateConflict), http.StatusConflict},
		{"referential integrity", fmt.Errorf("task 9: %w", models.ErrReferentialIntegrity), http.StatusUnprocessableEntity},
		{"credential unavailable", fmt.Errorf("secret: %w", models.ErrCredentialUnavailable), http.StatusServiceUnavailable},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			writeError(c, tc.err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
