package queue

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/ignite/linkedin-outreach/internal/domain"
)

type memRepo struct {
	items    []domain.QueueItem
	sent     map[string]time.Time
	errored  map[string]string
	fetchErr error
}

func newMemRepo(items ...domain.QueueItem) *memRepo {
	return &memRepo{
		items:   append([]domain.QueueItem(nil), items...),
		sent:    map[string]time.Time{},
		errored: map[string]string{},
	}
}

func (m *memRepo) NextQueued(_ context.Context, limit int) ([]domain.QueueItem, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	var queued []domain.QueueItem
	for _, item := range m.items {
		if item.Status == domain.QueueQueued {
			queued = append(queued, item)
		}
	}
	sort.Slice(queued, func(i, j int) bool {
		return queued[i].ScheduledAt.Before(queued[j].ScheduledAt)
	})
	if len(queued) > limit {
		queued = queued[:limit]
	}
	return queued, nil
}

func (m *memRepo) MarkSent(_ context.Context, id string, sentAt time.Time) error {
	m.sent[id] = sentAt
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = domain.QueueSent
		}
	}
	return nil
}

func (m *memRepo) MarkError(_ context.Context, id, message string) error {
	m.errored[id] = message
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = domain.QueueError
		}
	}
	return nil
}

type fakeSender struct {
	failURLs map[string]error
	sent     []string
}

func (f *fakeSender) SendMessage(_ context.Context, profileURL, _ string) error {
	if err, ok := f.failURLs[profileURL]; ok {
		return err
	}
	f.sent = append(f.sent, profileURL)
	return nil
}

type fakeLocker struct {
	held     bool
	acquired bool
	released bool
}

func (f *fakeLocker) Acquire(context.Context) (bool, error) {
	if f.held {
		return false, nil
	}
	f.acquired = true
	return true, nil
}

func (f *fakeLocker) Release(context.Context) error {
	f.released = true
	return nil
}

func item(id string, offset time.Duration) domain.QueueItem {
	return domain.QueueItem{
		ID:          id,
		LinkedInURL: fmt.Sprintf("https://linkedin.com/in/%s", id),
		Message:     "hello",
		Status:      domain.QueueQueued,
		ScheduledAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Add(offset),
	}
}

func TestProcessSendsInScheduledOrder(t *testing.T) {
	repo := newMemRepo(item("b", 2*time.Hour), item("a", time.Hour), item("c", 3*time.Hour))
	sender := &fakeSender{}
	svc := NewService(repo, sender, nil)

	res, err := svc.Process(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Processed != 3 {
		t.Errorf("processed = %d, want 3", res.Processed)
	}
	want := []string{
		"https://linkedin.com/in/a",
		"https://linkedin.com/in/b",
		"https://linkedin.com/in/c",
	}
	for i, url := range want {
		if sender.sent[i] != url {
			t.Errorf("send %d = %q, want %q", i, sender.sent[i], url)
		}
	}
}

func TestProcessFailureIsTerminalPerItem(t *testing.T) {
	repo := newMemRepo(item("a", time.Hour), item("b", 2*time.Hour), item("c", 3*time.Hour))
	sender := &fakeSender{failURLs: map[string]error{
		"https://linkedin.com/in/b": errors.New("actor run failed"),
	}}
	svc := NewService(repo, sender, nil)

	res, err := svc.Process(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	// Processed counts every attempted item, failures included.
	if res.Processed != 3 {
		t.Errorf("processed = %d, want 3", res.Processed)
	}
	if len(res.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(res.Results))
	}
	if res.Results[1].Status != domain.QueueError || res.Results[1].Error != "actor run failed" {
		t.Errorf("item b result = %+v", res.Results[1])
	}
	if repo.errored["b"] != "actor run failed" {
		t.Errorf("item b stored error = %q", repo.errored["b"])
	}
	if _, ok := repo.sent["a"]; !ok {
		t.Error("item a not marked sent")
	}
	if _, ok := repo.sent["c"]; !ok {
		t.Error("item c not marked sent after b failed")
	}
}

func TestProcessBatchSizeClamping(t *testing.T) {
	var items []domain.QueueItem
	for i := 0; i < 30; i++ {
		items = append(items, item(fmt.Sprintf("p%02d", i), time.Duration(i)*time.Minute))
	}

	cases := []struct {
		in   int
		want int
	}{
		{0, 5},
		{-3, 5},
		{7, 7},
		{50, 20},
	}
	for _, c := range cases {
		repo := newMemRepo(items...)
		sender := &fakeSender{}
		res, err := NewService(repo, sender, nil).Process(context.Background(), c.in)
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Results) != c.want {
			t.Errorf("batchSize %d: processed %d items, want %d", c.in, len(res.Results), c.want)
		}
	}
}

func TestProcessEmptyQueue(t *testing.T) {
	svc := NewService(newMemRepo(), &fakeSender{}, nil)
	res, err := svc.Process(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Processed != 0 || len(res.Results) != 0 {
		t.Errorf("result = %+v, want empty", res)
	}
}

func TestProcessSkipsWhenLockHeld(t *testing.T) {
	repo := newMemRepo(item("a", time.Hour))
	sender := &fakeSender{}
	locker := &fakeLocker{held: true}
	res, err := NewService(repo, sender, locker).Process(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Results) != 0 {
		t.Errorf("results = %d, want 0 when lock held", len(res.Results))
	}
	if len(sender.sent) != 0 {
		t.Error("sent despite locked queue")
	}
}

func TestProcessReleasesLock(t *testing.T) {
	repo := newMemRepo(item("a", time.Hour))
	locker := &fakeLocker{}
	_, err := NewService(repo, &fakeSender{}, locker).Process(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if !locker.acquired || !locker.released {
		t.Errorf("locker acquired=%v released=%v, want both", locker.acquired, locker.released)
	}
}

func TestProcessRepositoryError(t *testing.T) {
	repo := newMemRepo()
	repo.fetchErr = errors.New("db down")
	_, err := NewService(repo, &fakeSender{}, nil).Process(context.Background(), 5)
	if err == nil {
		t.Fatal("expected error")
	}
}
