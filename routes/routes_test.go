package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-admin/config"
	"hotel-admin/controllers"
	"hotel-admin/services"
)

type RouterSuite struct {
	suite.Suite
	DB     *gorm.DB
	Router *gin.Engine
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(config.Migrate(db))
	s.DB = db

	bookingSvc := services.NewBookingService(db, false)
	s.Router = SetupRouter(config.ServerConfig{CorsOrigins: []string{"*"}}, Controllers{
		Customers:        controllers.NewCustomerController(services.NewCustomerService(db)),
		Rooms:            controllers.NewRoomController(services.NewRoomService(db)),
		Inventory:        controllers.NewInventoryController(services.NewInventoryService(db)),
		Bookings:         controllers.NewBookingController(bookingSvc),
		BookingInventory: controllers.NewBookingInventoryController(services.NewBookingInventoryService(db), bookingSvc),
	})
}

func (s *RouterSuite) TearDownTest() {
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *RouterSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// create posts body and returns the new id.
func (s *RouterSuite) create(path, body string) int64 {
	w := s.do(http.MethodPost, path, body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return gjson.Get(w.Body.String(), "data.id").Int()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", gjson.Get(w.Body.String(), "status").String())
}

func (s *RouterSuite) TestMetricsExposed() {
	s.do(http.MethodGet, "/health", "")
	w := s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "hotel_admin_http_requests_total")
}

func (s *RouterSuite) TestCustomerLifecycle() {
	id := s.create("/api/customers", `{"name":"Viajes Andinos","contact_name":"Lucía","email":"reservas@andinos.example"}`)
	s.NotZero(id)

	w := s.do(http.MethodGet, "/api/customers?search=LUC", "")
	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.True(gjson.Get(body, "success").Bool())
	s.Equal(int64(1), gjson.Get(body, "data.count").Int())
	s.True(gjson.Get(body, "data.filtered").Bool())
	s.Equal("activo", gjson.Get(body, "data.items.0.state").String())

	w = s.do(http.MethodPatch, "/api/customers/"+itoa(id), `{"state":"inactivo"}`)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("inactivo", gjson.Get(w.Body.String(), "data.state").String())

	w = s.do(http.MethodGet, "/api/customers/stats", "")
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.inactive").Int())

	w = s.do(http.MethodDelete, "/api/customers/"+itoa(id), "")
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/customers", "")
	s.Equal(int64(0), gjson.Get(w.Body.String(), "data.total").Int())
	s.Equal("[]", gjson.Get(w.Body.String(), "data.items").Raw)

	w = s.do(http.MethodGet, "/api/customers/"+itoa(id), "")
	s.Equal(http.StatusNotFound, w.Code)
	s.False(gjson.Get(w.Body.String(), "success").Bool())
	s.Equal("customer not found", gjson.Get(w.Body.String(), "error").String())
}

func (s *RouterSuite) TestCustomerValidation() {
	w := s.do(http.MethodPost, "/api/customers", `{"email":"ana@example.com"}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/customers", `{"name":"Ana","email":"not-an-email"}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/customers/abc", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestRoomSearchAndRules() {
	s.create("/api/rooms", `{"room_number":"101","type":"doble","capacity":2,"price":100,"state":"disponible"}`)
	id := s.create("/api/rooms", `{"room_number":"103","type":"suite","capacity":4,"price":250,"state":"disponible","amenities":["wifi","tv"]}`)

	w := s.do(http.MethodGet, "/api/rooms?search=103", "")
	body := w.Body.String()
	s.Equal(int64(1), gjson.Get(body, "data.count").Int())
	s.Equal(int64(2), gjson.Get(body, "data.total").Int())
	s.Equal("103", gjson.Get(body, "data.items.0.room_number").String())
	s.Equal("tv", gjson.Get(body, "data.items.0.amenities.1").String())

	w = s.do(http.MethodGet, "/api/rooms?type=all&state=_all_", "")
	s.Equal(int64(2), gjson.Get(w.Body.String(), "data.count").Int())
	s.False(gjson.Get(w.Body.String(), "data.filtered").Bool())

	w = s.do(http.MethodPost, "/api/rooms", `{"room_number":"103","type":"suite","capacity":4,"price":250,"state":"disponible"}`)
	s.Equal(http.StatusConflict, w.Code)
	s.Contains(gjson.Get(w.Body.String(), "error").String(), "UNIQUE constraint failed")

	w = s.do(http.MethodPost, "/api/rooms", `{"room_number":"104","type":"suite","capacity":4,"price":250,"state":"reservada"}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/rooms/"+itoa(id), `{"state":"ocupada"}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "customer_id")

	w = s.do(http.MethodGet, "/api/rooms/stats", "")
	s.Equal(int64(2), gjson.Get(w.Body.String(), "data.available").Int())
	s.Equal(175.0, gjson.Get(w.Body.String(), "data.average_price").Float())
}

func (s *RouterSuite) TestPartialUpdateValidation() {
	roomID := s.create("/api/rooms", `{"room_number":"110","type":"doble","capacity":2,"price":100,"state":"disponible"}`)
	customerID := s.create("/api/customers", `{"name":"Ana"}`)
	itemID := s.create("/api/inventory", `{"name":"Toalla","type":"lencería","unit_price":8.5,"stock":10}`)

	w := s.do(http.MethodPatch, "/api/rooms/"+itoa(roomID), `{"capacity":0}`)
	s.Equal(http.StatusBadRequest, w.Code)
	w = s.do(http.MethodPatch, "/api/rooms/"+itoa(roomID), `{"state":"reservada"}`)
	s.Equal(http.StatusBadRequest, w.Code)
	w = s.do(http.MethodPatch, "/api/customers/"+itoa(customerID), `{"email":"not-an-email"}`)
	s.Equal(http.StatusBadRequest, w.Code)
	w = s.do(http.MethodPatch, "/api/inventory/"+itoa(itemID), `{"stock":-1}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPatch, "/api/rooms/"+itoa(roomID), `{"price":120}`)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(120.0, gjson.Get(w.Body.String(), "data.price").Float())
	s.Equal(int64(2), gjson.Get(w.Body.String(), "data.capacity").Int())
	s.Equal("110", gjson.Get(w.Body.String(), "data.room_number").String())
}

func (s *RouterSuite) TestBookingListDateOnlyUpperBound() {
	customerID := s.create("/api/customers", `{"name":"Ana"}`)
	roomID := s.create("/api/rooms", `{"room_number":"111","type":"doble","capacity":2,"price":100,"state":"disponible"}`)
	s.create("/api/bookings", `{"customer_id":`+itoa(customerID)+`,"room_id":`+itoa(roomID)+
		`,"start_date":"2024-02-05T10:00:00Z","end_date":"2024-02-07"}`)

	w := s.do(http.MethodGet, "/api/bookings?to=2024-02-05", "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.count").Int())

	w = s.do(http.MethodGet, "/api/bookings?to=2024-02-04", "")
	s.Equal(int64(0), gjson.Get(w.Body.String(), "data.count").Int())

	w = s.do(http.MethodGet, "/api/bookings?to=2024-02-05T09:00:00Z", "")
	s.Equal(int64(0), gjson.Get(w.Body.String(), "data.count").Int())
}

func (s *RouterSuite) TestInventoryStockFilter() {
	s.create("/api/inventory", `{"name":"Toalla","type":"lencería","unit_price":8.5,"stock":120}`)
	s.create("/api/inventory", `{"name":"Cama supletoria","type":"mobiliario","unit_price":90,"stock":4}`)

	w := s.do(http.MethodGet, "/api/inventory?stock=low", "")
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.count").Int())
	s.Equal("Cama supletoria", gjson.Get(w.Body.String(), "data.items.0.name").String())

	w = s.do(http.MethodGet, "/api/inventory/stats", "")
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.low_stock").Int())
	s.Equal(int64(124), gjson.Get(w.Body.String(), "data.total_stock").Int())
}

func (s *RouterSuite) TestBookingFlow() {
	customerID := s.create("/api/customers", `{"name":"Ana Torres"}`)
	roomID := s.create("/api/rooms", `{"room_number":"105","type":"doble","capacity":2,"price":100,"state":"disponible"}`)

	bookingID := s.create("/api/bookings", `{"customer_id":`+itoa(customerID)+`,"room_id":`+itoa(roomID)+
		`,"start_date":"2024-02-01","end_date":"2024-02-05","state":"confirmada"}`)

	w := s.do(http.MethodGet, "/api/bookings/"+itoa(bookingID), "")
	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal(400.0, gjson.Get(body, "data.total_price").Float())
	s.Equal("Ana Torres", gjson.Get(body, "data.customer_name").String())
	s.Equal("105", gjson.Get(body, "data.room_number").String())

	w = s.do(http.MethodGet, "/api/bookings/availability?room_id="+itoa(roomID)+"&start_date=2024-02-03&end_date=2024-02-06", "")
	s.Equal(http.StatusOK, w.Code)
	s.False(gjson.Get(w.Body.String(), "data.available").Bool())

	w = s.do(http.MethodGet, "/api/bookings/availability?room_id="+itoa(roomID)+"&start_date=2024-02-06&end_date=2024-02-10", "")
	s.True(gjson.Get(w.Body.String(), "data.available").Bool())

	w = s.do(http.MethodGet, "/api/bookings/availability?room_id="+itoa(roomID)+"&start_date=2024-02-03&end_date=2024-02-06&exclude_id="+itoa(bookingID), "")
	s.True(gjson.Get(w.Body.String(), "data.available").Bool())

	w = s.do(http.MethodPost, "/api/bookings", `{"customer_id":`+itoa(customerID)+`,"room_id":`+itoa(roomID)+
		`,"start_date":"2024-02-03","end_date":"2024-02-06","state":"confirmada"}`)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/api/bookings/quote?room_id="+itoa(roomID)+"&start_date=2024-01-01&end_date=2024-01-03", "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(200.0, gjson.Get(w.Body.String(), "data.total_price").Float())
	s.Equal(int64(2), gjson.Get(w.Body.String(), "data.nights").Int())

	w = s.do(http.MethodGet, "/api/bookings/quote?room_id=999&start_date=2024-01-01&end_date=2024-01-03", "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPatch, "/api/bookings/"+itoa(bookingID), `{"state":"cancelada"}`)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("cancelada", gjson.Get(w.Body.String(), "data.state").String())

	w = s.do(http.MethodPatch, "/api/bookings/"+itoa(bookingID), `{"state":"perdida"}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/bookings?search=ana&from=2024-02-04&to=2024-02-10", "")
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.count").Int())

	w = s.do(http.MethodGet, "/api/bookings?from=2024-03-01", "")
	s.Equal(int64(0), gjson.Get(w.Body.String(), "data.count").Int())
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.total").Int())

	w = s.do(http.MethodGet, "/api/bookings?from=02/03/2024", "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/bookings/stats", "")
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.cancelled").Int())
	s.Equal(0.0, gjson.Get(w.Body.String(), "data.revenue").Float())
}

func (s *RouterSuite) TestBookingInventory() {
	customerID := s.create("/api/customers", `{"name":"Ana"}`)
	roomID := s.create("/api/rooms", `{"room_number":"201","type":"suite","capacity":4,"price":250,"state":"disponible"}`)
	itemID := s.create("/api/inventory", `{"name":"Cama supletoria","type":"mobiliario","unit_price":90,"stock":4}`)
	bookingID := s.create("/api/bookings", `{"customer_id":`+itoa(customerID)+`,"room_id":`+itoa(roomID)+
		`,"start_date":"2024-04-01","end_date":"2024-04-02"}`)

	base := "/api/bookings/" + itoa(bookingID) + "/inventory"
	w := s.do(http.MethodPost, base, `{"inventory_id":`+itoa(itemID)+`}`)
	s.Equal(http.StatusCreated, w.Code)
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.quantity").Int())

	w = s.do(http.MethodPatch, base+"/"+itoa(itemID), `{"quantity":2}`)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(int64(2), gjson.Get(w.Body.String(), "data.quantity").Int())

	w = s.do(http.MethodGet, base, "")
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.#").Int())

	w = s.do(http.MethodDelete, base+"/"+itoa(itemID), "")
	s.Equal(http.StatusOK, w.Code)
	w = s.do(http.MethodDelete, base+"/"+itoa(itemID), "")
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/bookings/999/inventory", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func TestRegisterValidators_Idempotent(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators())
}

func TestCorsWildcardDisablesCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(config.ServerConfig{CorsOrigins: []string{"*"}}, Controllers{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://admin.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, strings.TrimSpace(w.Header().Get("Access-Control-Allow-Credentials")))
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
