package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tokonusa/inventory-backend/internal/domain/customer"
	"github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/internal/domain/opname"
	"github.com/tokonusa/inventory-backend/internal/domain/product"
	"github.com/tokonusa/inventory-backend/internal/domain/purchase"
	"github.com/tokonusa/inventory-backend/internal/domain/sale"
	"github.com/tokonusa/inventory-backend/internal/domain/supplier"
)

// In-memory fakes backing the service tests. The store keeps plain
// values; the fake transaction manager snapshots it before each unit of
// work and restores it on error, mirroring a database rollback.

var errFakeNotFound = errors.New("not found")

type memStore struct {
	products  map[string]product.Product
	movements []movement.Movement
	purchases map[string]purchase.Order
	sales     map[string]sale.Order
	opnames   map[string]opname.Opname
	suppliers map[string]supplier.Supplier
	customers map[string]customer.Customer
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[string]product.Product{},
		purchases: map[string]purchase.Order{},
		sales:     map[string]sale.Order{},
		opnames:   map[string]opname.Opname{},
		suppliers: map[string]supplier.Supplier{},
		customers: map[string]customer.Customer{},
	}
}

func cloneJSON[T any](in T) T {
	b, err := json.Marshal(in)
	if err != nil {
		panic(err)
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		panic(err)
	}
	return out
}

func (s *memStore) clone() *memStore {
	return &memStore{
		products:  cloneJSON(s.products),
		movements: cloneJSON(s.movements),
		purchases: cloneJSON(s.purchases),
		sales:     cloneJSON(s.sales),
		opnames:   cloneJSON(s.opnames),
		suppliers: cloneJSON(s.suppliers),
		customers: cloneJSON(s.customers),
	}
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) error {
	r.s.products[p.ID] = cloneJSON(*p)
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, errFakeNotFound
	}
	out := cloneJSON(p)
	return &out, nil
}

func (r *fakeProductRepo) FindByCode(_ context.Context, branchID, code string) (*product.Product, error) {
	for _, p := range r.s.products {
		if p.BranchID == branchID && p.Code == code {
			out := cloneJSON(p)
			return &out, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeProductRepo) FindByBranch(_ context.Context, branchID string, _, _ int) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.s.products {
		if p.BranchID == branchID {
			cp := cloneJSON(p)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return errFakeNotFound
	}
	r.s.products[p.ID] = cloneJSON(*p)
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.products[id]; !ok {
		return errFakeNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id string, delta int64) (int64, error) {
	p, ok := r.s.products[id]
	if !ok {
		return 0, errFakeNotFound
	}
	p.Stock += delta
	r.s.products[id] = p
	return p.Stock, nil
}

func (r *fakeProductRepo) SetStock(_ context.Context, id string, qty int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return errFakeNotFound
	}
	p.Stock = qty
	r.s.products[id] = p
	return nil
}

func (r *fakeProductRepo) CountByBranch(_ context.Context, branchID string) (int, error) {
	n := 0
	for _, p := range r.s.products {
		if p.BranchID == branchID {
			n++
		}
	}
	return n, nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Record(_ context.Context, m *movement.Movement) error {
	r.s.movements = append(r.s.movements, cloneJSON(*m))
	return nil
}

func (r *fakeMovementRepo) FindByBranch(_ context.Context, branchID string, _, _ int) ([]*movement.Movement, error) {
	var out []*movement.Movement
	for i := range r.s.movements {
		if r.s.movements[i].BranchID == branchID {
			cp := cloneJSON(r.s.movements[i])
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) FindByProduct(_ context.Context, productID string, _, _ int) ([]*movement.Movement, error) {
	var out []*movement.Movement
	for i := range r.s.movements {
		if r.s.movements[i].ProductID == productID {
			cp := cloneJSON(r.s.movements[i])
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) CountByBranch(_ context.Context, branchID string) (int, error) {
	n := 0
	for i := range r.s.movements {
		if r.s.movements[i].BranchID == branchID {
			n++
		}
	}
	return n, nil
}

type fakePurchaseRepo struct{ s *memStore }

func (r *fakePurchaseRepo) Create(_ context.Context, o *purchase.Order) error {
	r.s.purchases[o.ID] = cloneJSON(*o)
	return nil
}

func (r *fakePurchaseRepo) FindByID(_ context.Context, id string) (*purchase.Order, error) {
	o, ok := r.s.purchases[id]
	if !ok {
		return nil, errFakeNotFound
	}
	out := cloneJSON(o)
	return &out, nil
}

func (r *fakePurchaseRepo) FindByBranch(_ context.Context, branchID string, _, _ int) ([]*purchase.Order, error) {
	var out []*purchase.Order
	for _, o := range r.s.purchases {
		if o.BranchID == branchID {
			cp := cloneJSON(o)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) FindByStatus(_ context.Context, branchID string, status purchase.Status, _, _ int) ([]*purchase.Order, error) {
	var out []*purchase.Order
	for _, o := range r.s.purchases {
		if o.BranchID == branchID && o.Status == status {
			cp := cloneJSON(o)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) Update(_ context.Context, o *purchase.Order) error {
	if _, ok := r.s.purchases[o.ID]; !ok {
		return errFakeNotFound
	}
	r.s.purchases[o.ID] = cloneJSON(*o)
	return nil
}

func (r *fakePurchaseRepo) CountByBranch(_ context.Context, branchID string) (int, error) {
	n := 0
	for _, o := range r.s.purchases {
		if o.BranchID == branchID {
			n++
		}
	}
	return n, nil
}

func (r *fakePurchaseRepo) CountByStatus(_ context.Context, branchID string, status purchase.Status) (int, error) {
	n := 0
	for _, o := range r.s.purchases {
		if o.BranchID == branchID && o.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeSaleRepo struct{ s *memStore }

func (r *fakeSaleRepo) Create(_ context.Context, o *sale.Order) error {
	r.s.sales[o.ID] = cloneJSON(*o)
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id string) (*sale.Order, error) {
	o, ok := r.s.sales[id]
	if !ok {
		return nil, errFakeNotFound
	}
	out := cloneJSON(o)
	return &out, nil
}

func (r *fakeSaleRepo) FindByBranch(_ context.Context, branchID string, _, _ int) ([]*sale.Order, error) {
	var out []*sale.Order
	for _, o := range r.s.sales {
		if o.BranchID == branchID {
			cp := cloneJSON(o)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) FindByStatus(_ context.Context, branchID string, status sale.Status, _, _ int) ([]*sale.Order, error) {
	var out []*sale.Order
	for _, o := range r.s.sales {
		if o.BranchID == branchID && o.Status == status {
			cp := cloneJSON(o)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, o *sale.Order) error {
	if _, ok := r.s.sales[o.ID]; !ok {
		return errFakeNotFound
	}
	r.s.sales[o.ID] = cloneJSON(*o)
	return nil
}

func (r *fakeSaleRepo) CountByBranch(_ context.Context, branchID string) (int, error) {
	n := 0
	for _, o := range r.s.sales {
		if o.BranchID == branchID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSaleRepo) CountByStatus(_ context.Context, branchID string, status sale.Status) (int, error) {
	n := 0
	for _, o := range r.s.sales {
		if o.BranchID == branchID && o.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeOpnameRepo struct{ s *memStore }

func (r *fakeOpnameRepo) Create(_ context.Context, o *opname.Opname) error {
	r.s.opnames[o.ID] = cloneJSON(*o)
	return nil
}

func (r *fakeOpnameRepo) FindByID(_ context.Context, id string) (*opname.Opname, error) {
	o, ok := r.s.opnames[id]
	if !ok {
		return nil, errFakeNotFound
	}
	out := cloneJSON(o)
	return &out, nil
}

func (r *fakeOpnameRepo) FindByBranch(_ context.Context, branchID string, _, _ int) ([]*opname.Opname, error) {
	var out []*opname.Opname
	for _, o := range r.s.opnames {
		if o.BranchID == branchID {
			cp := cloneJSON(o)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOpnameRepo) Update(_ context.Context, o *opname.Opname) error {
	if _, ok := r.s.opnames[o.ID]; !ok {
		return errFakeNotFound
	}
	r.s.opnames[o.ID] = cloneJSON(*o)
	return nil
}

func (r *fakeOpnameRepo) CountByBranch(_ context.Context, branchID string) (int, error) {
	n := 0
	for _, o := range r.s.opnames {
		if o.BranchID == branchID {
			n++
		}
	}
	return n, nil
}

type fakeSupplierRepo struct{ s *memStore }

func (r *fakeSupplierRepo) Create(_ context.Context, sp *supplier.Supplier) error {
	r.s.suppliers[sp.ID] = cloneJSON(*sp)
	return nil
}

func (r *fakeSupplierRepo) FindByID(_ context.Context, id string) (*supplier.Supplier, error) {
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, errFakeNotFound
	}
	out := cloneJSON(sp)
	return &out, nil
}

func (r *fakeSupplierRepo) FindByBranch(_ context.Context, branchID string, _, _ int) ([]*supplier.Supplier, error) {
	var out []*supplier.Supplier
	for _, sp := range r.s.suppliers {
		if sp.BranchID == branchID {
			cp := cloneJSON(sp)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, sp *supplier.Supplier) error {
	if _, ok := r.s.suppliers[sp.ID]; !ok {
		return errFakeNotFound
	}
	r.s.suppliers[sp.ID] = cloneJSON(*sp)
	return nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.suppliers[id]; !ok {
		return errFakeNotFound
	}
	delete(r.s.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) CountByBranch(_ context.Context, branchID string) (int, error) {
	n := 0
	for _, sp := range r.s.suppliers {
		if sp.BranchID == branchID {
			n++
		}
	}
	return n, nil
}

type fakeCustomerRepo struct{ s *memStore }

func (r *fakeCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	r.s.customers[c.ID] = cloneJSON(*c)
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id string) (*customer.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, errFakeNotFound
	}
	out := cloneJSON(c)
	return &out, nil
}

func (r *fakeCustomerRepo) FindByBranch(_ context.Context, branchID string, _, _ int) ([]*customer.Customer, error) {
	var out []*customer.Customer
	for _, c := range r.s.customers {
		if c.BranchID == branchID {
			cp := cloneJSON(c)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *customer.Customer) error {
	if _, ok := r.s.customers[c.ID]; !ok {
		return errFakeNotFound
	}
	r.s.customers[c.ID] = cloneJSON(*c)
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.customers[id]; !ok {
		return errFakeNotFound
	}
	delete(r.s.customers, id)
	return nil
}

func (r *fakeCustomerRepo) CountByBranch(_ context.Context, branchID string) (int, error) {
	n := 0
	for _, c := range r.s.customers {
		if c.BranchID == branchID {
			n++
		}
	}
	return n, nil
}

func reposFor(s *memStore) Repositories {
	return Repositories{
		Products:  &fakeProductRepo{s},
		Movements: &fakeMovementRepo{s},
		Purchases: &fakePurchaseRepo{s},
		Sales:     &fakeSaleRepo{s},
		Opnames:   &fakeOpnameRepo{s},
		Suppliers: &fakeSupplierRepo{s},
		Customers: &fakeCustomerRepo{s},
	}
}

// fakeTxManager snapshots the store before the unit of work and
// restores it when fn fails, so tests observe rollback semantics.
type fakeTxManager struct{ s *memStore }

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	snap := m.s.clone()
	if err := fn(ctx, reposFor(m.s)); err != nil {
		*m.s = *snap
		return err
	}
	return nil
}

type fakeNumbers struct{ n int64 }

func (g *fakeNumbers) Next(_ context.Context, _, docType string) (string, error) {
	g.n++
	return fmt.Sprintf("%s/202608/%05d", docType, g.n), nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

// recordingLogger captures warning messages for assertions
type recordingLogger struct {
	nopLogger
	warns []string
}

func (l *recordingLogger) Warn(msg string, _ ...interface{}) {
	l.warns = append(l.warns, msg)
}

// testEnv bundles the fakes with direct store access for assertions
type testEnv struct {
	store *memStore
	tx    *fakeTxManager
	nums  *fakeNumbers
}

func newTestEnv() *testEnv {
	s := newMemStore()
	return &testEnv{
		store: s,
		tx:    &fakeTxManager{s},
		nums:  &fakeNumbers{},
	}
}

func (e *testEnv) addProduct(id, name string, stock int64, costPrice, sellPrice int64) {
	e.store.products[id] = product.Product{
		ID:        id,
		BranchID:  "b1",
		Code:      "SKU-" + id,
		Name:      name,
		UnitName:  "pcs",
		Stock:     stock,
		CostPrice: decimal.NewFromInt(costPrice),
		SellPrice: decimal.NewFromInt(sellPrice),
		Status:    product.StatusActive,
	}
}

func (e *testEnv) addSupplier(id, name string) {
	e.store.suppliers[id] = supplier.Supplier{ID: id, BranchID: "b1", Name: name, Status: supplier.StatusActive}
}

func (e *testEnv) addCustomer(id, name string) {
	e.store.customers[id] = customer.Customer{ID: id, BranchID: "b1", Name: name, Status: customer.StatusActive}
}

func (e *testEnv) stockOf(id string) int64 {
	return e.store.products[id].Stock
}
