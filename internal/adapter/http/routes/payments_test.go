package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"splitpay/internal/adapter/http/handlers"
	"splitpay/internal/adapter/http/handlers/mocks"
	"splitpay/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAddPaymentRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockISplitPaymentUseCase(gomock.NewController(t))
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, handlers.NewSplitPaymentHandler(uc))

	uc.EXPECT().ListTransactions(gomock.Any(), "ord-1").Return([]entities.TransactionRecord{}, nil)
	uc.EXPECT().GetTransaction(gomock.Any(), "tx-1").Return(entities.TransactionRecord{ID: "tx-1"}, nil)

	for _, path := range []string{"/v1/ping", "/v1/orders/ord-1/transactions", "/v1/transactions/tx-1"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}
