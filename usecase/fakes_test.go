package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
)

// In-memory repository fakes for exercising the business rules without a
// database. They implement only what the usecases touch; unsupported
// paths fail loudly.

type fakeQuoteRepo struct {
	quotes map[string]*model.Quote
	// failFirstChecks makes that many CodeExists calls report a collision,
	// driving the re-roll loop in tests
	failFirstChecks int
	codeChecks      int
	seq             int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[string]*model.Quote)}
}

func (f *fakeQuoteRepo) Create(_ context.Context, quote *model.Quote) error {
	f.seq++
	if quote.ID == "" {
		quote.ID = fmt.Sprintf("quote-%d", f.seq)
	}
	quote.CreatedAt = time.Now()
	f.quotes[quote.ID] = quote
	return nil
}

func (f *fakeQuoteRepo) GetByID(_ context.Context, id string) (*model.Quote, error) {
	quote, ok := f.quotes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *quote
	return &copied, nil
}

func (f *fakeQuoteRepo) GetByIDFull(ctx context.Context, id string) (*model.Quote, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeQuoteRepo) GetByCode(_ context.Context, code string) (*model.Quote, error) {
	for _, quote := range f.quotes {
		if quote.Code == code {
			return quote, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeQuoteRepo) CodeExists(_ context.Context, code string) (bool, error) {
	f.codeChecks++
	if f.codeChecks <= f.failFirstChecks {
		return true, nil
	}
	for _, quote := range f.quotes {
		if quote.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// Update mirrors the real repository: header fields are rewritten wholesale
// (zeroes included), the client binding only moves when resolved, and code,
// status, value and cost are untouched.
func (f *fakeQuoteRepo) Update(_ context.Context, quote *model.Quote) error {
	existing, ok := f.quotes[quote.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Title = quote.Title
	existing.Destination = quote.Destination
	existing.TravelDate = quote.TravelDate
	existing.Notes = quote.Notes
	existing.AdultCount = quote.AdultCount
	existing.ChildCount = quote.ChildCount
	existing.InfantCount = quote.InfantCount
	if quote.ClientID != nil {
		existing.ClientID = quote.ClientID
	}
	if quote.ClientName != "" {
		existing.ClientName = quote.ClientName
	}
	return nil
}

func (f *fakeQuoteRepo) UpdateStatus(_ context.Context, id string, status string) error {
	quote, ok := f.quotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	quote.Status = status
	return nil
}

func (f *fakeQuoteRepo) SetSaleState(_ context.Context, id string, value float64, status string, confirmedAt *time.Time) error {
	quote, ok := f.quotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	quote.Value = value
	quote.Status = status
	quote.SaleConfirmedAt = confirmedAt
	return nil
}

func (f *fakeQuoteRepo) SetTotals(_ context.Context, id string, value, cost float64) error {
	quote, ok := f.quotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	quote.Value = value
	quote.Cost = cost
	return nil
}

func (f *fakeQuoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.quotes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.quotes, id)
	return nil
}

func (f *fakeQuoteRepo) List(_ context.Context, _, _ int) ([]*model.Quote, int, error) {
	var quotes []*model.Quote
	for _, quote := range f.quotes {
		quotes = append(quotes, quote)
	}
	return quotes, len(quotes), nil
}

func (f *fakeQuoteRepo) ListByStatus(_ context.Context, statuses ...string) ([]*model.Quote, error) {
	var quotes []*model.Quote
	for _, quote := range f.quotes {
		for _, status := range statuses {
			if quote.Status == status {
				quotes = append(quotes, quote)
				break
			}
		}
	}
	return quotes, nil
}

func (f *fakeQuoteRepo) ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeClientRepo struct {
	clients map[string]*model.Client
}

func newFakeClientRepo(clients ...*model.Client) *fakeClientRepo {
	repo := &fakeClientRepo{clients: make(map[string]*model.Client)}
	for _, client := range clients {
		repo.clients[client.ID] = client
	}
	return repo
}

func (f *fakeClientRepo) Create(_ context.Context, client *model.Client) error {
	if client.ID == "" {
		client.ID = fmt.Sprintf("client-%d", len(f.clients)+1)
	}
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*model.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func (f *fakeClientRepo) GetByEmail(_ context.Context, email string) (*model.Client, error) {
	for _, client := range f.clients {
		if client.Email == email {
			return client, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeClientRepo) Update(_ context.Context, client *model.Client) error {
	if _, ok := f.clients[client.ID]; !ok {
		return domain.ErrNotFound
	}
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) List(_ context.Context, _, _ int) ([]*model.Client, int, error) {
	var clients []*model.Client
	for _, client := range f.clients {
		clients = append(clients, client)
	}
	return clients, len(clients), nil
}

func (f *fakeClientRepo) Search(_ context.Context, _ string, _ int) ([]*model.Client, error) {
	return nil, nil
}

type fakeLeadRepo struct {
	leads map[string]*model.Lead
}

func newFakeLeadRepo(leads ...*model.Lead) *fakeLeadRepo {
	repo := &fakeLeadRepo{leads: make(map[string]*model.Lead)}
	for _, lead := range leads {
		repo.leads[lead.ID] = lead
	}
	return repo
}

func (f *fakeLeadRepo) Create(_ context.Context, lead *model.Lead) error {
	if lead.ID == "" {
		lead.ID = fmt.Sprintf("lead-%d", len(f.leads)+1)
	}
	f.leads[lead.ID] = lead
	return nil
}

func (f *fakeLeadRepo) GetByID(_ context.Context, id string) (*model.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return lead, nil
}

func (f *fakeLeadRepo) Update(_ context.Context, lead *model.Lead) error {
	if _, ok := f.leads[lead.ID]; !ok {
		return domain.ErrNotFound
	}
	f.leads[lead.ID] = lead
	return nil
}

func (f *fakeLeadRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.leads[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.leads, id)
	return nil
}

func (f *fakeLeadRepo) List(_ context.Context) ([]*model.Lead, error) {
	var leads []*model.Lead
	for _, lead := range f.leads {
		leads = append(leads, lead)
	}
	return leads, nil
}

func (f *fakeLeadRepo) ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeTaskRepo struct {
	tasks map[string]*model.Task
}

func newFakeTaskRepo(tasks ...*model.Task) *fakeTaskRepo {
	repo := &fakeTaskRepo{tasks: make(map[string]*model.Task)}
	for _, task := range tasks {
		repo.tasks[task.ID] = task
	}
	return repo
}

func (f *fakeTaskRepo) Create(_ context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = fmt.Sprintf("task-%d", len(f.tasks)+1)
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*model.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *model.Task) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id string) error {
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) List(_ context.Context, _, _ int) ([]*model.Task, int, error) {
	var tasks []*model.Task
	for _, task := range f.tasks {
		tasks = append(tasks, task)
	}
	return tasks, len(tasks), nil
}

func (f *fakeTaskRepo) ListByLead(_ context.Context, leadID string) ([]*model.Task, error) {
	var tasks []*model.Task
	for _, task := range f.tasks {
		if task.LeadID != nil && *task.LeadID == leadID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (f *fakeTaskRepo) DeleteByLead(_ context.Context, leadID string) error {
	for id, task := range f.tasks {
		if task.LeadID != nil && *task.LeadID == leadID {
			delete(f.tasks, id)
		}
	}
	return nil
}

type fakeFlightRepo struct {
	flights map[string]*model.Flight
}

func newFakeFlightRepo() *fakeFlightRepo {
	return &fakeFlightRepo{flights: make(map[string]*model.Flight)}
}

func (f *fakeFlightRepo) Create(_ context.Context, flight *model.Flight) error {
	if flight.ID == "" {
		flight.ID = fmt.Sprintf("flight-%d", len(f.flights)+1)
	}
	f.flights[flight.ID] = flight
	return nil
}

func (f *fakeFlightRepo) GetByID(_ context.Context, id string) (*model.Flight, error) {
	flight, ok := f.flights[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return flight, nil
}

func (f *fakeFlightRepo) Update(_ context.Context, flight *model.Flight) error {
	if _, ok := f.flights[flight.ID]; !ok {
		return domain.ErrNotFound
	}
	f.flights[flight.ID] = flight
	return nil
}

func (f *fakeFlightRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.flights[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.flights, id)
	return nil
}

func (f *fakeFlightRepo) ListByQuote(_ context.Context, quoteID string) ([]*model.Flight, error) {
	var flights []*model.Flight
	for _, flight := range f.flights {
		if flight.QuoteID == quoteID {
			flights = append(flights, flight)
		}
	}
	return flights, nil
}

type fakePassengerRepo struct {
	passengers map[string]*model.QuotePassenger
}

func newFakePassengerRepo() *fakePassengerRepo {
	return &fakePassengerRepo{passengers: make(map[string]*model.QuotePassenger)}
}

func (f *fakePassengerRepo) Create(_ context.Context, passenger *model.QuotePassenger) error {
	if passenger.ID == "" {
		passenger.ID = fmt.Sprintf("passenger-%d", len(f.passengers)+1)
	}
	f.passengers[passenger.ID] = passenger
	return nil
}

func (f *fakePassengerRepo) GetByID(_ context.Context, id string) (*model.QuotePassenger, error) {
	passenger, ok := f.passengers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return passenger, nil
}

func (f *fakePassengerRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.passengers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.passengers, id)
	return nil
}

func (f *fakePassengerRepo) ListByQuote(_ context.Context, quoteID string) ([]*model.QuotePassenger, error) {
	var passengers []*model.QuotePassenger
	for _, passenger := range f.passengers {
		if passenger.QuoteID == quoteID {
			passengers = append(passengers, passenger)
		}
	}
	return passengers, nil
}

func (f *fakePassengerRepo) ExistsOnQuote(_ context.Context, quoteID, clientID string) (bool, error) {
	for _, passenger := range f.passengers {
		if passenger.QuoteID == quoteID && passenger.ClientID == clientID {
			return true, nil
		}
	}
	return false, nil
}

type fakeSaleItemRepo struct {
	items map[string]*model.SaleItem
}

func newFakeSaleItemRepo(items ...*model.SaleItem) *fakeSaleItemRepo {
	repo := &fakeSaleItemRepo{items: make(map[string]*model.SaleItem)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (f *fakeSaleItemRepo) Create(_ context.Context, item *model.SaleItem) error {
	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", len(f.items)+1)
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeSaleItemRepo) GetByID(_ context.Context, id string) (*model.SaleItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (f *fakeSaleItemRepo) Update(_ context.Context, item *model.SaleItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeSaleItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeSaleItemRepo) ListByQuote(_ context.Context, quoteID string, kind string) ([]*model.SaleItem, error) {
	var items []*model.SaleItem
	for _, item := range f.items {
		if item.QuoteID == quoteID && (kind == "" || item.Kind == kind) {
			items = append(items, item)
		}
	}
	return items, nil
}

type fakePayableRepo struct {
	accounts map[string]*model.AccountPayable
}

func newFakePayableRepo() *fakePayableRepo {
	return &fakePayableRepo{accounts: make(map[string]*model.AccountPayable)}
}

func (f *fakePayableRepo) Create(_ context.Context, account *model.AccountPayable) error {
	if account.ID == "" {
		account.ID = fmt.Sprintf("payable-%d", len(f.accounts)+1)
	}
	f.accounts[account.ID] = account
	return nil
}

func (f *fakePayableRepo) GetByID(_ context.Context, id string) (*model.AccountPayable, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (f *fakePayableRepo) Update(_ context.Context, account *model.AccountPayable) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakePayableRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.accounts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakePayableRepo) List(_ context.Context, _, _ int) ([]*model.AccountPayable, int, error) {
	var accounts []*model.AccountPayable
	for _, account := range f.accounts {
		accounts = append(accounts, account)
	}
	return accounts, len(accounts), nil
}

func (f *fakePayableRepo) ListByOrigin(_ context.Context, origin, originID string) ([]*model.AccountPayable, error) {
	var accounts []*model.AccountPayable
	for _, account := range f.accounts {
		if account.Origin == origin && account.OriginID != nil && *account.OriginID == originID {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func (f *fakePayableRepo) DeleteByOrigin(_ context.Context, origin, originID string) error {
	for id, account := range f.accounts {
		if account.Origin == origin && account.OriginID != nil && *account.OriginID == originID {
			delete(f.accounts, id)
		}
	}
	return nil
}

type fakeReceivableRepo struct {
	accounts map[string]*model.AccountReceivable
}

func newFakeReceivableRepo() *fakeReceivableRepo {
	return &fakeReceivableRepo{accounts: make(map[string]*model.AccountReceivable)}
}

func (f *fakeReceivableRepo) Create(_ context.Context, account *model.AccountReceivable) error {
	if account.ID == "" {
		account.ID = fmt.Sprintf("receivable-%d", len(f.accounts)+1)
	}
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeReceivableRepo) GetByID(_ context.Context, id string) (*model.AccountReceivable, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (f *fakeReceivableRepo) Update(_ context.Context, account *model.AccountReceivable) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeReceivableRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.accounts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeReceivableRepo) List(_ context.Context, _, _ int) ([]*model.AccountReceivable, int, error) {
	var accounts []*model.AccountReceivable
	for _, account := range f.accounts {
		accounts = append(accounts, account)
	}
	return accounts, len(accounts), nil
}

func (f *fakeReceivableRepo) ListByOrigin(_ context.Context, origin, originID string) ([]*model.AccountReceivable, error) {
	var accounts []*model.AccountReceivable
	for _, account := range f.accounts {
		if account.Origin == origin && account.OriginID != nil && *account.OriginID == originID {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func (f *fakeReceivableRepo) DeleteByOrigin(_ context.Context, origin, originID string) error {
	for id, account := range f.accounts {
		if account.Origin == origin && account.OriginID != nil && *account.OriginID == originID {
			delete(f.accounts, id)
		}
	}
	return nil
}
