package statement

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

var (
	_ accountRepo       = &accountRepoMock{}
	_ actorRepo         = &actorRepoMock{}
	_ verbRepo          = &verbRepoMock{}
	_ objectRepo        = &objectRepoMock{}
	_ extensionRepo     = &extensionRepoMock{}
	_ resultRepo        = &resultRepoMock{}
	_ contextRepo       = &contextRepoMock{}
	_ statementRepo     = &statementRepoMock{}
	_ txManager         = &txManagerMock{}
	_ statementEnqueuer = &enqueuerMock{}
)

type accountRepoMock struct {
	GetByHomePageFunc func(ctx context.Context, homePage string) (*domain.Account, error)
	CreateFunc        func(ctx context.Context, a *domain.Account) (*domain.Account, error)
}

func (m *accountRepoMock) GetByHomePage(ctx context.Context, homePage string) (*domain.Account, error) {
	if m.GetByHomePageFunc == nil {
		panic("accountRepoMock.GetByHomePageFunc: method is nil but GetByHomePage was just called")
	}
	return m.GetByHomePageFunc(ctx, homePage)
}

func (m *accountRepoMock) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if m.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, a)
}

type actorRepoMock struct {
	FindByIFIFunc  func(ctx context.Context, ifi domain.ActorIFI) (*domain.Actor, error)
	CreateFunc     func(ctx context.Context, a *domain.Actor) (*domain.Actor, error)
	UpdateNameFunc func(ctx context.Context, id uuid.UUID, name *string) error

	mu              sync.Mutex
	createCalls     []*domain.Actor
	updateNameCalls []uuid.UUID
}

func (m *actorRepoMock) FindByIFI(ctx context.Context, ifi domain.ActorIFI) (*domain.Actor, error) {
	if m.FindByIFIFunc == nil {
		panic("actorRepoMock.FindByIFIFunc: method is nil but FindByIFI was just called")
	}
	return m.FindByIFIFunc(ctx, ifi)
}

func (m *actorRepoMock) Create(ctx context.Context, a *domain.Actor) (*domain.Actor, error) {
	if m.CreateFunc == nil {
		panic("actorRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, a)
	m.mu.Unlock()
	return m.CreateFunc(ctx, a)
}

func (m *actorRepoMock) UpdateName(ctx context.Context, id uuid.UUID, name *string) error {
	if m.UpdateNameFunc == nil {
		panic("actorRepoMock.UpdateNameFunc: method is nil but UpdateName was just called")
	}
	m.mu.Lock()
	m.updateNameCalls = append(m.updateNameCalls, id)
	m.mu.Unlock()
	return m.UpdateNameFunc(ctx, id, name)
}

func (m *actorRepoMock) CreateCalls() []*domain.Actor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *actorRepoMock) UpdateNameCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateNameCalls
}

type verbRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Verb, error)
	CreateFunc  func(ctx context.Context, v *domain.Verb) (*domain.Verb, error)
}

func (m *verbRepoMock) GetByID(ctx context.Context, id string) (*domain.Verb, error) {
	if m.GetByIDFunc == nil {
		panic("verbRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *verbRepoMock) Create(ctx context.Context, v *domain.Verb) (*domain.Verb, error) {
	if m.CreateFunc == nil {
		panic("verbRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, v)
}

type objectRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Object, error)
	CreateFunc           func(ctx context.Context, o *domain.Object) (*domain.Object, error)
	UpsertDefinitionFunc func(ctx context.Context, d *domain.ActivityDefinition) (*domain.ActivityDefinition, error)

	mu          sync.Mutex
	createCalls []*domain.Object
	upsertCalls []*domain.ActivityDefinition
}

func (m *objectRepoMock) GetByID(ctx context.Context, id string) (*domain.Object, error) {
	if m.GetByIDFunc == nil {
		panic("objectRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *objectRepoMock) Create(ctx context.Context, o *domain.Object) (*domain.Object, error) {
	if m.CreateFunc == nil {
		panic("objectRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, o)
	m.mu.Unlock()
	return m.CreateFunc(ctx, o)
}

func (m *objectRepoMock) UpsertDefinition(ctx context.Context, d *domain.ActivityDefinition) (*domain.ActivityDefinition, error) {
	if m.UpsertDefinitionFunc == nil {
		panic("objectRepoMock.UpsertDefinitionFunc: method is nil but UpsertDefinition was just called")
	}
	m.mu.Lock()
	m.upsertCalls = append(m.upsertCalls, d)
	m.mu.Unlock()
	return m.UpsertDefinitionFunc(ctx, d)
}

func (m *objectRepoMock) CreateCalls() []*domain.Object {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *objectRepoMock) UpsertDefinitionCalls() []*domain.ActivityDefinition {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upsertCalls
}

type extensionRepoMock struct {
	ReplaceForOwnerFunc func(ctx context.Context, rows []domain.Extension) error

	mu           sync.Mutex
	replaceCalls [][]domain.Extension
}

func (m *extensionRepoMock) ReplaceForOwner(ctx context.Context, rows []domain.Extension) error {
	if m.ReplaceForOwnerFunc == nil {
		panic("extensionRepoMock.ReplaceForOwnerFunc: method is nil but ReplaceForOwner was just called")
	}
	m.mu.Lock()
	m.replaceCalls = append(m.replaceCalls, rows)
	m.mu.Unlock()
	return m.ReplaceForOwnerFunc(ctx, rows)
}

func (m *extensionRepoMock) ReplaceForOwnerCalls() [][]domain.Extension {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.replaceCalls
}

type resultRepoMock struct {
	CreateFunc func(ctx context.Context, res *domain.Result) (*domain.Result, error)

	mu          sync.Mutex
	createCalls []*domain.Result
}

func (m *resultRepoMock) Create(ctx context.Context, res *domain.Result) (*domain.Result, error) {
	if m.CreateFunc == nil {
		panic("resultRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, res)
	m.mu.Unlock()
	return m.CreateFunc(ctx, res)
}

func (m *resultRepoMock) CreateCalls() []*domain.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

type contextRepoMock struct {
	CreateFunc      func(ctx context.Context, c *domain.Context) (*domain.Context, error)
	AddActivityFunc func(ctx context.Context, ca *domain.ContextActivity) (*domain.ContextActivity, error)

	mu               sync.Mutex
	createCalls      []*domain.Context
	addActivityCalls []*domain.ContextActivity
}

func (m *contextRepoMock) Create(ctx context.Context, c *domain.Context) (*domain.Context, error) {
	if m.CreateFunc == nil {
		panic("contextRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *contextRepoMock) AddActivity(ctx context.Context, ca *domain.ContextActivity) (*domain.ContextActivity, error) {
	if m.AddActivityFunc == nil {
		panic("contextRepoMock.AddActivityFunc: method is nil but AddActivity was just called")
	}
	m.mu.Lock()
	m.addActivityCalls = append(m.addActivityCalls, ca)
	m.mu.Unlock()
	return m.AddActivityFunc(ctx, ca)
}

func (m *contextRepoMock) CreateCalls() []*domain.Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *contextRepoMock) AddActivityCalls() []*domain.ContextActivity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addActivityCalls
}

type statementRepoMock struct {
	CreateFunc  func(ctx context.Context, st *domain.Statement) (*domain.Statement, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Statement, error)

	mu          sync.Mutex
	createCalls []*domain.Statement
}

func (m *statementRepoMock) Create(ctx context.Context, st *domain.Statement) (*domain.Statement, error) {
	if m.CreateFunc == nil {
		panic("statementRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, st)
	m.mu.Unlock()
	return m.CreateFunc(ctx, st)
}

func (m *statementRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error) {
	if m.GetByIDFunc == nil {
		panic("statementRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *statementRepoMock) CreateCalls() []*domain.Statement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

// txManagerMock runs the function inline; RunInTxFunc overrides when set.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

type enqueuerMock struct {
	EnqueueFunc func(ctx context.Context, job CreateJob) error

	mu           sync.Mutex
	enqueueCalls []CreateJob
}

func (m *enqueuerMock) Enqueue(ctx context.Context, job CreateJob) error {
	if m.EnqueueFunc == nil {
		panic("enqueuerMock.EnqueueFunc: method is nil but Enqueue was just called")
	}
	m.mu.Lock()
	m.enqueueCalls = append(m.enqueueCalls, job)
	m.mu.Unlock()
	return m.EnqueueFunc(ctx, job)
}

func (m *enqueuerMock) EnqueueCalls() []CreateJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enqueueCalls
}
