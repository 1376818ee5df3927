package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/planner"
)

// In-memory repositories shared by the service tests

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = strconv.Itoa(r.nextID)
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	cp.PreferredFoods = slices.Clone(u.PreferredFoods)
	return &cp, nil
}

func (r *fakeUserRepo) GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.FirebaseUID == uid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) UpsertByFirebaseUID(ctx context.Context, user *domain.User) (bool, error) {
	if existing, err := r.GetByFirebaseUID(ctx, user.FirebaseUID); err == nil {
		*user = *existing
		return false, nil
	}
	return true, r.Create(ctx, user)
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, userID string, p domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.Goal, u.WeeklyAvailability, u.WeightKg, u.HeightCm = p.Goal, p.WeeklyAvailability, p.WeightKg, p.HeightCm
	return nil
}

func (r *fakeUserRepo) UpdatePreferredFoods(ctx context.Context, userID string, foods []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.PreferredFoods = slices.Clone(foods)
	return nil
}

type fakeProgressRepo struct {
	mu      sync.Mutex
	entries map[string]*domain.ProgressEntry
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[string]*domain.ProgressEntry)}
}

func (r *fakeProgressRepo) Upsert(ctx context.Context, entry *domain.ProgressEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := entry.UserID + "/" + entry.Date
	now := time.Now().UTC()
	if prev, ok := r.entries[key]; ok {
		entry.ID, entry.CreatedAt = prev.ID, prev.CreatedAt
	} else {
		entry.ID = key
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now
	cp := *entry
	r.entries[key] = &cp
	return nil
}

func (r *fakeProgressRepo) GetByDate(ctx context.Context, userID, date string) (*domain.ProgressEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[userID+"/"+date]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeProgressRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]*domain.ProgressEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ProgressEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeStatsRepo struct {
	mu    sync.Mutex
	stats map[string]domain.UserStats
	// conflicts forces the next n swaps to lose
	conflicts int
	swaps     int
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{stats: make(map[string]domain.UserStats)}
}

func (r *fakeStatsRepo) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stats[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *fakeStatsRepo) CompareAndSwap(ctx context.Context, next *domain.UserStats, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.swaps++
	if r.conflicts > 0 {
		r.conflicts--
		return domain.ErrStatsConflict
	}
	if r.stats[next.UserID].Version != expectedVersion {
		return domain.ErrStatsConflict
	}
	next.Version = expectedVersion + 1
	r.stats[next.UserID] = *next
	return nil
}

type fakePlanRepo struct {
	plans map[string]domain.TrainingPlan
}

func newFakePlanRepo() *fakePlanRepo {
	r := &fakePlanRepo{plans: make(map[string]domain.TrainingPlan)}
	for _, p := range planner.TrainingPlans() {
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakePlanRepo) SeedIfEmpty(ctx context.Context, plans []domain.TrainingPlan) (int, error) {
	if len(r.plans) > 0 {
		return 0, nil
	}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return len(plans), nil
}

func (r *fakePlanRepo) List(ctx context.Context) ([]*domain.TrainingPlan, error) {
	out := make([]*domain.TrainingPlan, 0, len(r.plans))
	for _, p := range r.plans {
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DaysPerWeek < out[j].DaysPerWeek })
	return out, nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id string) (*domain.TrainingPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTrainingPlanNotFound, id)
	}
	return &p, nil
}

// fakeCache stores JSON like the Redis cache does
type fakeCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return domain.ErrCacheMiss
	}
	return json.Unmarshal(b, dest)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type fakeFiles struct {
	uploads map[string][]byte
}

func (f *fakeFiles) Upload(ctx context.Context, file []byte, filename, contentType string) (string, error) {
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[filename] = file
	return "http://files.local/bucket/" + filename, nil
}

type fakeAuthClient struct {
	tokens map[string]*auth.Token
}

func (f *fakeAuthClient) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if t, ok := f.tokens[idToken]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func seededRand() planner.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// onboardedUser stores an onboarded user and returns its id
func onboardedUser(users *fakeUserRepo, goal domain.Goal, days int) string {
	u := &domain.User{
		FirebaseUID:        "uid-" + strconv.Itoa(len(users.users)+1),
		Email:              "athlete@fitpro.test",
		Name:               "Athlete",
		Goal:               goal,
		WeeklyAvailability: days,
		WeightKg:           80,
		HeightCm:           180,
	}
	_ = users.Create(context.Background(), u)
	return u.ID
}
