package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"nestcare/models"
	"nestcare/services/wizard"
)

// stubWizardService records adjustment deltas; unneeded methods come from the
// embedded interface and are never called.
type stubWizardService struct {
	wizard.WizardService
	session models.WizardSession
	deltas  []int
}

func (s *stubWizardService) AdjustRoomQuantity(_, _ string, delta int) (*models.WizardSession, error) {
	s.deltas = append(s.deltas, delta)
	return &s.session, nil
}

func (s *stubWizardService) AdjustBagCount(_ string, delta int) (*models.WizardSession, error) {
	s.deltas = append(s.deltas, delta)
	return &s.session, nil
}

func (s *stubWizardService) AdjustMealCount(_ string, _ models.Weekday, delta int) (*models.WizardSession, error) {
	s.deltas = append(s.deltas, delta)
	return &s.session, nil
}

func TestZeroDeltaAdjustmentsAreAccepted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubWizardService{session: models.WizardSession{SessionID: "sess-1"}}
	h := NewWizardHandler(stub, zap.NewNop())

	router := gin.New()
	router.POST("/session/:sessionID/rooms", h.AdjustRoomQuantity)
	router.POST("/session/:sessionID/bags", h.AdjustBagCount)
	router.POST("/session/:sessionID/meals", h.AdjustMealCount)

	cases := []struct {
		path string
		body string
	}{
		{"/session/sess-1/rooms", `{"room":"bedroom","delta":0}`},
		{"/session/sess-1/bags", `{"delta":0}`},
		{"/session/sess-1/meals", `{"day":"monday","delta":0}`},
		{"/session/sess-1/rooms", `{"room":"bedroom","delta":-1}`},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "body %s", tc.body)
	}

	assert.Equal(t, []int{0, 0, 0, -1}, stub.deltas)
}
