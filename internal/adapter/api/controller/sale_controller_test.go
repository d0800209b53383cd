package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/dto"
	saledomain "github.com/tokonusa/inventory-backend/internal/domain/sale"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}
func (stubLogger) Debug(string, ...interface{}) {}
func (stubLogger) Warn(string, ...interface{})  {}

// listSaleRepo serves List from a fixed slice; the write methods are
// never reached by the handler under test.
type listSaleRepo struct {
	orders []*saledomain.Order
}

func (r *listSaleRepo) Create(context.Context, *saledomain.Order) error { return nil }
func (r *listSaleRepo) FindByID(context.Context, string) (*saledomain.Order, error) {
	return nil, nil
}
func (r *listSaleRepo) Update(context.Context, *saledomain.Order) error { return nil }

func (r *listSaleRepo) FindByBranch(_ context.Context, branchID string, limit, offset int) ([]*saledomain.Order, error) {
	return r.filter(branchID, "", limit, offset), nil
}

func (r *listSaleRepo) FindByStatus(_ context.Context, branchID string, status saledomain.Status, limit, offset int) ([]*saledomain.Order, error) {
	return r.filter(branchID, status, limit, offset), nil
}

func (r *listSaleRepo) filter(branchID string, status saledomain.Status, limit, offset int) []*saledomain.Order {
	var out []*saledomain.Order
	for _, o := range r.orders {
		if o.BranchID != branchID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (r *listSaleRepo) CountByBranch(_ context.Context, branchID string) (int, error) {
	return len(r.filter(branchID, "", len(r.orders), 0)), nil
}

func (r *listSaleRepo) CountByStatus(_ context.Context, branchID string, status saledomain.Status) (int, error) {
	return len(r.filter(branchID, status, len(r.orders), 0)), nil
}

func testSaleOrders(t *testing.T) []*saledomain.Order {
	t.Helper()
	items := []saledomain.Item{
		{ProductID: "p1", ProductName: "Gula 1kg", UnitName: "pcs", Quantity: 1, UnitPrice: decimal.NewFromInt(15000)},
	}

	var orders []*saledomain.Order
	for i := 0; i < 3; i++ {
		o, err := saledomain.NewOrder("b1", "c1", "Toko Makmur", "SO/1", time.Now(), items, saledomain.Adjustments{}, "sari")
		require.NoError(t, err)
		orders = append(orders, o)
	}
	// one confirmed among the drafts
	require.NoError(t, orders[0].Confirm("sari", ""))
	return orders
}

func newSaleListRouter(repo *listSaleRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewSaleController(nil, repo, stubLogger{})
	router := gin.New()
	router.GET("/sales", func(c *gin.Context) {
		c.Set("branch_id", "b1")
		ctrl.List(c)
	})
	return router
}

func getSaleList(t *testing.T, router *gin.Engine, url string) dto.SaleListResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SaleListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSaleListTotalMatchesStatusFilter(t *testing.T) {
	router := newSaleListRouter(&listSaleRepo{orders: testSaleOrders(t)})

	// the filtered total counts confirmed orders only, not the branch
	resp := getSaleList(t, router, "/sales?status=DIKONFIRMASI")
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.TotalPages)

	resp = getSaleList(t, router, "/sales")
	assert.Len(t, resp.Items, 3)
	assert.Equal(t, 3, resp.Total)
}

func TestSaleListPaginatesFilteredTotal(t *testing.T) {
	orders := testSaleOrders(t)
	// two drafts across two pages of size one
	router := newSaleListRouter(&listSaleRepo{orders: orders})

	resp := getSaleList(t, router, "/sales?status=DRAFT&page=1&size=1")
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
}
