package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	bidding "bid4service/internal/biddingService"
	escrow "bid4service/internal/escrowService"
	"bid4service/internal/gateway"
	"bid4service/internal/notify"
	"bid4service/internal/orchestrator"
	project "bid4service/internal/projectService"
	"bid4service/internal/repository"
	"bid4service/internal/server"
	"bid4service/services/marketplace/handler"
)

const testSecret = "integration-test-secret"

// SetupTestRouter wires the full stack against the in-memory ledger and the
// sandbox gateway, exactly as main does minus the real database.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	gw := gateway.NewSandbox()
	notifier := notify.NewLogNotifier()

	biddingService := bidding.NewBiddingService(store, notifier)
	projectService := project.NewProjectService(store, notifier)
	escrowService := escrow.NewEscrowService(store, gw, notifier)
	workflow := orchestrator.NewOrchestrator(store, gw, notifier)

	biddingHandler := handler.NewBiddingHandler(biddingService, workflow)
	projectHandler := handler.NewProjectHandler(projectService)
	paymentHandler := handler.NewPaymentHandler(escrowService, workflow)

	return server.SetupRouter(testSecret, biddingHandler, projectHandler, paymentHandler)
}

// TokenFor mints a bearer token the way the external auth service would.
func TokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope. Created responses are unwrapped to their data.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}
	return resp, w
}
