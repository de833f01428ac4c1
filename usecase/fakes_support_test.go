package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/gateway/flightdata"
	"travel-crm-service/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"github.com/twmb/franz-go/pkg/kgo"
)

// testLogger discards everything
type testLogger struct{}

func newTestLogger() logger.LoggerInterface { return &testLogger{} }

func (l *testLogger) Log(context.Context, slog.Level, string, ...any) {}
func (l *testLogger) Info(string, ...any)                             {}
func (l *testLogger) Error(string, ...any)                            {}
func (l *testLogger) Warn(string, ...any)                             {}
func (l *testLogger) Debug(string, ...any)                            {}
func (l *testLogger) InfoContext(context.Context, string, ...any)     {}
func (l *testLogger) ErrorContext(context.Context, string, ...any)    {}
func (l *testLogger) WarnContext(context.Context, string, ...any)     {}
func (l *testLogger) DebugContext(context.Context, string, ...any)    {}

// fakeCache is an in-memory stand-in for the Redis wrapper
type fakeCache struct {
	entries map[string]string
	deletes int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.sets++
	switch v := value.(type) {
	case string:
		f.entries[key] = v
	case []byte:
		f.entries[key] = string(v)
	default:
		f.entries[key] = fmt.Sprintf("%v", v)
	}
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	value, ok := f.entries[key]
	if !ok {
		return "", goredis.Nil
	}
	return value, nil
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	f.deletes++
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.entries[key]
	return ok, nil
}

func (f *fakeCache) Expire(context.Context, string, time.Duration) error { return nil }
func (f *fakeCache) TTL(context.Context, string) (time.Duration, error)  { return 0, nil }
func (f *fakeCache) Close() error                                        { return nil }
func (f *fakeCache) GetClient() goredis.UniversalClient                  { return nil }

// fakeProducer records published messages
type fakeProducer struct {
	topics   []string
	messages [][]byte
}

func newFakeProducer() *fakeProducer { return &fakeProducer{} }

func (f *fakeProducer) Produce(_ context.Context, topic string, value []byte) error {
	f.topics = append(f.topics, topic)
	f.messages = append(f.messages, value)
	return nil
}

func (f *fakeProducer) ProduceAsync(ctx context.Context, topic string, value []byte) {
	_ = f.Produce(ctx, topic, value)
}

func (f *fakeProducer) Consume(...string) <-chan *kgo.Record { return nil }
func (f *fakeProducer) Close() error                         { return nil }
func (f *fakeProducer) GetClient() *kgo.Client               { return nil }

// fakeScheduleGateway serves a canned flight schedule
type fakeScheduleGateway struct {
	schedule *flightdata.Schedule
	err      error
	calls    int
}

func (f *fakeScheduleGateway) GetSchedule(_ context.Context, _ string, _ time.Time) (*flightdata.Schedule, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

type fakeCompanyRepo struct {
	companies map[string]*model.Company
}

func newFakeCompanyRepo(companies ...*model.Company) *fakeCompanyRepo {
	repo := &fakeCompanyRepo{companies: make(map[string]*model.Company)}
	for _, company := range companies {
		repo.companies[company.ID] = company
	}
	return repo
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *model.Company) error {
	if company.ID == "" {
		company.ID = fmt.Sprintf("company-%d", len(f.companies)+1)
	}
	f.companies[company.ID] = company
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*model.Company, error) {
	company, ok := f.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, company *model.Company) error {
	f.companies[company.ID] = company
	return nil
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	for _, company := range f.companies {
		companies = append(companies, company)
	}
	return companies, nil
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) ConfirmEmail(_ context.Context, id string) error {
	user, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	if user.EmailConfirmedAt == nil {
		now := time.Now()
		user.EmailConfirmedAt = &now
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}
