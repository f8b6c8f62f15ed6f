//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PosBridge/config"
	"PosBridge/internal/app"
	apphttp "PosBridge/internal/controller/http"
	"PosBridge/internal/controller/http/handlers"
	"PosBridge/internal/dispatch"
	"PosBridge/internal/domain/kitchen"
	"PosBridge/internal/domain/menu"
	"PosBridge/internal/domain/order"
	"PosBridge/internal/external/dispatchapi"
	"PosBridge/internal/external/kafka"
	"PosBridge/internal/messaging"
	menu_repo "PosBridge/internal/repo/menu"
	order_repo "PosBridge/internal/repo/order"
	"PosBridge/internal/testinfra"
	"PosBridge/pkg/health"
	"PosBridge/pkg/logger"
	"PosBridge/pkg/postgres"
)

//go:embed testdata/pos_base.sql
var baseFixture string

var (
	suite *testinfra.TestSuite
	pg    *testinfra.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	suite, err = testinfra.NewTestSuite(ctx, testinfra.SuiteOptions{
		WithKafka:    true,
		WithWiremock: true,
		MappingsPath: "testdata/wiremock",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to start test containers: %v", err))
	}
	pg = suite.Postgres

	code := m.Run()

	suite.Cleanup(ctx)
	os.Exit(code)
}

// receivedOrder is one payload the fake external API captured.
type receivedOrder struct {
	Headers http.Header
	Body    map[string]any
}

// fakeExternalAPI captures dispatched payloads and serves a canned response.
type fakeExternalAPI struct {
	mu       sync.Mutex
	received []receivedOrder
	status   int
}

func (f *fakeExternalAPI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.received = append(f.received, receivedOrder{Headers: r.Header.Clone(), Body: body})
		f.mu.Unlock()

		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"received":true}`))
	}
}

func (f *fakeExternalAPI) orders() []receivedOrder {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]receivedOrder(nil), f.received...)
}

func setupServer(t *testing.T, pool *postgres.Postgres) *httptest.Server {
	t.Helper()

	l := logger.New("error")
	orderRepo := order_repo.NewPgOrderRepo(pool)
	dispatcher := order.NewDispatcher(dispatchapi.New(nil), orderRepo, nil, l)

	return setupServerWithTrigger(t, pool, dispatch.NewSyncTrigger(dispatcher))
}

// setupServerWithTrigger builds the full HTTP stack around the given
// dispatch trigger, so tests can swap inline delivery for the Kafka queue.
func setupServerWithTrigger(t *testing.T, pool *postgres.Postgres, trigger order.DispatchTrigger) *httptest.Server {
	t.Helper()

	l := logger.New("error")

	orderRepo := order_repo.NewPgOrderRepo(pool)
	menuRepo := menu_repo.NewPgMenuRepo(pool)

	orderService := order.NewOrderService(orderRepo, trigger, l)
	kitchenService := kitchen.NewKitchenService(orderRepo, messaging.NopPublisher{}, l)
	menuService := menu.NewMenuService(menuRepo, l)

	router := apphttp.NewRouter(
		handlers.NewOrderHandler(orderService),
		handlers.NewKitchenHandler(kitchenService),
		handlers.NewMenuHandler(menuService),
		health.NewRegistry(health.NewPostgresChecker(pool.Pool)),
	)

	engine := app.NewGinEngine(l)
	router.SetUp(engine)

	return httptest.NewServer(engine)
}

func resetFixture(t *testing.T, endpoint string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, pg.Truncate(ctx))
	_, err := pg.Pool.Pool.Exec(ctx, baseFixture)
	require.NoError(t, err)
	_, err = pg.Pool.Pool.Exec(ctx,
		"UPDATE pos_configs SET api_endpoint = $1 WHERE id = 1", endpoint)
	require.NoError(t, err)
}

func batchBody(t *testing.T, draft bool, orders ...map[string]any) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"orders": orders, "draft": draft})
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func sampleOrder(reference string, sessionID int64, state string) map[string]any {
	return map[string]any{
		"pos_reference": reference,
		"session_id":    sessionID,
		"partner_id":    11,
		"partner_name":  "Walk-in",
		"date_order":    "2026-03-14T12:30:00Z",
		"amount_total":  21.5,
		"amount_tax":    1.5,
		"amount_paid":   21.5,
		"state":         state,
		"lines": []map[string]any{
			{
				"product_id":          1,
				"product_name":        "Cola",
				"qty":                 2,
				"price_unit":          3.5,
				"price_subtotal":      7,
				"price_subtotal_incl": 7.5,
				"note":                "no ice",
			},
		},
	}
}

func TestOrderDispatchFlow(t *testing.T) {
	api := &fakeExternalAPI{status: http.StatusOK}
	apiServer := httptest.NewServer(api.handler())
	defer apiServer.Close()

	resetFixture(t, apiServer.URL)

	server := setupServer(t, pg.Pool)
	defer server.Close()

	t.Run("batch dispatches finalized orders and skips drafts", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/pos/orders", "application/json",
			batchBody(t, false,
				sampleOrder("Order 0001", 1, "paid"),
				sampleOrder("Order 0002", 1, "draft"),
			))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		received := api.orders()
		require.Len(t, received, 1, "only the paid order reaches the API")
		assert.Equal(t, "Order 0001", received[0].Body["pos_reference"])
		assert.Equal(t, "application/json", received[0].Headers.Get("Content-Type"))
		assert.Equal(t, "application/json", received[0].Headers.Get("Accept"))

		lines := received[0].Body["lines"].([]any)
		require.Len(t, lines, 1)
		assert.Equal(t, "Cola", lines[0].(map[string]any)["product_name"])

		var sent bool
		var response string
		err = pg.Pool.Pool.QueryRow(context.Background(),
			"SELECT api_sent, api_response FROM pos_orders WHERE pos_reference = 'Order 0001'").
			Scan(&sent, &response)
		require.NoError(t, err)
		assert.True(t, sent)
		assert.Equal(t, `{"received":true}`, response)

		err = pg.Pool.Pool.QueryRow(context.Background(),
			"SELECT api_sent FROM pos_orders WHERE pos_reference = 'Order 0002'").
			Scan(&sent)
		require.NoError(t, err)
		assert.False(t, sent, "draft order is not dispatched")
	})

	t.Run("duplicate reference is rejected with 409", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/pos/orders", "application/json",
			batchBody(t, false, sampleOrder("Order 0001", 1, "paid")))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["message"], "already exists")
	})

	t.Run("disabled config skips the API without failing creation", func(t *testing.T) {
		before := len(api.orders())

		resp, err := http.Post(server.URL+"/pos/orders", "application/json",
			batchBody(t, false, sampleOrder("Order 0003", 2, "paid")))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		assert.Len(t, api.orders(), before, "disabled config produces no API traffic")
	})

	t.Run("failed delivery stores the failure message and resend recovers", func(t *testing.T) {
		api.status = http.StatusInternalServerError

		resp, err := http.Post(server.URL+"/pos/orders", "application/json",
			batchBody(t, false, sampleOrder("Order 0004", 1, "paid")))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode, "dispatch failure never fails creation")

		var sent bool
		var response string
		var orderID int64
		err = pg.Pool.Pool.QueryRow(context.Background(),
			"SELECT id, api_sent, api_response FROM pos_orders WHERE pos_reference = 'Order 0004'").
			Scan(&orderID, &sent, &response)
		require.NoError(t, err)
		assert.False(t, sent)
		assert.Contains(t, response, "Failed to send order Order 0004 to API")

		api.status = http.StatusOK

		resp, err = http.Post(fmt.Sprintf("%s/orders/%d/dispatch", server.URL, orderID), "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		err = pg.Pool.Pool.QueryRow(context.Background(),
			"SELECT api_sent, api_response FROM pos_orders WHERE pos_reference = 'Order 0004'").
			Scan(&sent, &response)
		require.NoError(t, err)
		assert.True(t, sent)
		assert.Equal(t, `{"received":true}`, response)
	})
}

type boardParams struct {
	ShopID int64 `url:"shop_id"`
}

func TestKitchenFlow(t *testing.T) {
	api := &fakeExternalAPI{status: http.StatusOK}
	apiServer := httptest.NewServer(api.handler())
	defer apiServer.Close()

	resetFixture(t, apiServer.URL)

	server := setupServer(t, pg.Pool)
	defer server.Close()

	resp, err := http.Post(server.URL+"/pos/orders", "application/json",
		batchBody(t, false, sampleOrder("Order 0010", 1, "paid")))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	params, err := query.Values(boardParams{ShopID: 1})
	require.NoError(t, err)

	resp, err = http.Get(server.URL + "/kitchen/orders?" + params.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var board kitchen.Board
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))
	require.Len(t, board.Orders, 1)
	assert.Equal(t, "Order 0010", board.Orders[0].PosReference)
	assert.Equal(t, "draft", board.Orders[0].OrderStatus)
	require.Len(t, board.OrderLines, 1)

	orderID := board.Orders[0].ID

	statusBody := bytes.NewReader([]byte(`{"order_status":"waiting"}`))
	resp, err = http.Post(fmt.Sprintf("%s/kitchen/orders/%d/status", server.URL, orderID), "application/json", statusBody)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored string
	err = pg.Pool.Pool.QueryRow(context.Background(),
		"SELECT order_status FROM pos_orders WHERE id = $1", orderID).Scan(&stored)
	require.NoError(t, err)
	assert.Equal(t, "waiting", stored)

	badBody := bytes.NewReader([]byte(`{"order_status":"burned"}`))
	resp, err = http.Post(fmt.Sprintf("%s/kitchen/orders/%d/status", server.URL, orderID), "application/json", badBody)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

type menuParams struct {
	ConfigID   int64  `url:"config_id"`
	CategoryID *int64 `url:"category_id,omitempty"`
	Lang       string `url:"lang,omitempty"`
}

func TestMenuBrowse(t *testing.T) {
	resetFixture(t, "http://placeholder.local/orders")

	server := setupServer(t, pg.Pool)
	defer server.Close()

	params, err := query.Values(menuParams{ConfigID: 1})
	require.NoError(t, err)

	resp, err := http.Get(server.URL + "/api/v1/pos-menu?" + params.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var level menu.Level
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&level))
	require.Len(t, level.Categories, 2)
	assert.Equal(t, "Drinks", level.Categories[0].Name)
	assert.True(t, level.Categories[0].HasMore)
	assert.Equal(t, "/web/image/pos.category/1/image_128", level.Categories[0].ImageURL)
	assert.Empty(t, level.Products)
	assert.Equal(t, "en_US", level.Language)

	drinks := level.Categories[0].ID
	params, err = query.Values(menuParams{ConfigID: 1, CategoryID: &drinks, Lang: "de_DE"})
	require.NoError(t, err)

	resp, err = http.Get(server.URL + "/api/v1/pos-menu?" + params.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&level))
	assert.Equal(t, "Drinks", level.CategoryName)
	require.Len(t, level.Categories, 1)
	assert.Equal(t, "Hot Drinks", level.Categories[0].Name)
	require.Len(t, level.Products, 1, "inactive products stay hidden")
	assert.Equal(t, "Cola", level.Products[0].Name)
	assert.InDelta(t, 3.5, level.Products[0].Price, 0.0001)
	assert.InDelta(t, 4.2, level.Products[0].PriceIncl, 0.0001)
	assert.Equal(t, "de_DE", level.Language)

	resp, err = http.Get(server.URL + "/api/v1/pos-menu-languages")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var langs struct {
		Languages []menu.LanguageView `json:"languages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&langs))
	require.Len(t, langs.Languages, 2)
	assert.Equal(t, "/base/static/img/country_flags/us.png", langs.Languages[0].FlagIcon)
	assert.Empty(t, langs.Languages[1].FlagIcon)
}

func TestKafkaDispatchFlow(t *testing.T) {
	resetFixture(t, suite.Wiremock.BaseURL+"/orders")

	l := logger.New("error")
	pool := pg.Pool

	publisher := kafka.NewPublisher(l, suite.Kafka.Brokers, suite.Kafka.DispatchTopic)
	defer publisher.Close()

	server := setupServerWithTrigger(t, pool, dispatch.NewAsyncTrigger(publisher, l))
	defer server.Close()

	// The consumer side delivers inline, the way the kafka mode wires it.
	orderRepo := order_repo.NewPgOrderRepo(pool)
	dispatcher := order.NewDispatcher(dispatchapi.New(nil), orderRepo, nil, l)
	deliveryService := order.NewOrderService(orderRepo, dispatch.NewSyncTrigger(dispatcher), l)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartDispatchWorker(ctx, l, config.Config{
		KafkaBrokers:               suite.Kafka.Brokers,
		KafkaDispatchTopic:         suite.Kafka.DispatchTopic,
		KafkaDispatchConsumerGroup: suite.Kafka.DispatchGroup,
		KafkaDispatchDLQTopic:      suite.Kafka.DispatchTopic + ".dlq",
	}, deliveryService)

	resp, err := http.Post(server.URL+"/pos/orders", "application/json",
		batchBody(t, false,
			sampleOrder("Order 00101-001-0001", 1, "paid"),
			sampleOrder("Order 00101-001-0002", 1, "draft"),
		))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	dbCtx := context.Background()
	require.Eventually(t, func() bool {
		var sent bool
		err := pool.Pool.QueryRow(dbCtx,
			"SELECT api_sent FROM pos_orders WHERE pos_reference = $1",
			"Order 00101-001-0001").Scan(&sent)
		return err == nil && sent
	}, 30*time.Second, 250*time.Millisecond, "queued order should be delivered by the consumer")

	var response *string
	require.NoError(t, pool.Pool.QueryRow(dbCtx,
		"SELECT api_response FROM pos_orders WHERE pos_reference = $1",
		"Order 00101-001-0001").Scan(&response))
	require.NotNil(t, response)
	assert.JSONEq(t, `{"received":true,"source":"stub"}`, *response)

	var draftSent bool
	require.NoError(t, pool.Pool.QueryRow(dbCtx,
		"SELECT api_sent FROM pos_orders WHERE pos_reference = $1",
		"Order 00101-001-0002").Scan(&draftSent))
	assert.False(t, draftSent, "draft orders stay out of the queue")
}
