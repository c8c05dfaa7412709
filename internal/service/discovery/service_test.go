package discovery

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ignite/linkedin-outreach/internal/apify"
	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/serper"
	"github.com/ignite/linkedin-outreach/internal/service/campaign"
)

// memCampaignStore is an in-memory campaign store for unit testing.
type memCampaignStore struct {
	campaigns map[string]*domain.Campaign
}

func (m *memCampaignStore) Get(_ context.Context, id string) (*domain.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, campaign.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCampaignStore) ListActive(_ context.Context, ids []string) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range m.campaigns {
		if !c.IsActive() {
			continue
		}
		if len(ids) > 0 && !contains(ids, c.ID) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// memProspectStore records inserted batches; failOn simulates per-campaign
// insert errors.
type memProspectStore struct {
	inserted []domain.Prospect
	failOn   string
}

func (m *memProspectStore) BulkInsert(_ context.Context, prospects []domain.Prospect) (int, error) {
	if m.failOn != "" && len(prospects) > 0 && prospects[0].CampaignID == m.failOn {
		return 0, fmt.Errorf("insert denied")
	}
	m.inserted = append(m.inserted, prospects...)
	return len(prospects), nil
}

// fakeSearch returns canned results keyed by substring match on the query,
// falling back to the default results.
type fakeSearch struct {
	results    []serper.OrganicResult
	queries    []string
	configured bool
	err        error
}

func (f *fakeSearch) Configured() bool { return f.configured }

func (f *fakeSearch) Search(_ context.Context, query string, _ int) ([]serper.OrganicResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type fakeCrawler struct {
	items   []apify.ProfileItem
	missing string
	err     error
}

func (f *fakeCrawler) MissingCredential() string { return f.missing }

func (f *fakeCrawler) CollectProfiles(_ context.Context, _ []string, _ int) ([]apify.ProfileItem, error) {
	return f.items, f.err
}

func testCampaign(roles ...string) *domain.Campaign {
	return &domain.Campaign{
		ID:             "c1",
		UserID:         "u1",
		Name:           "Q3 outbound",
		ProductService: "devops tooling",
		TargetIndustry: "SaaS",
		IdealJobRoles:  roles,
		Region:         "India",
		Status:         domain.CampaignActive,
	}
}

func newTestService(c *domain.Campaign, search *fakeSearch, crawler *fakeCrawler) (*Service, *memProspectStore) {
	campaigns := &memCampaignStore{campaigns: map[string]*domain.Campaign{}}
	if c != nil {
		campaigns.campaigns[c.ID] = c
	}
	prospects := &memProspectStore{}
	return NewService(campaigns, prospects, search, crawler, 10, 25), prospects
}

func TestBuildSearchQueriesCount(t *testing.T) {
	cases := []struct {
		roles []string
		want  int
	}{
		{nil, 4}, // fixed default role list
		{[]string{"CTO"}, 1},
		{[]string{"CTO", "HR Manager"}, 2},
		{[]string{"a", "b", "c", "d", "e", "f", "g"}, 5}, // capped
	}
	for _, c := range cases {
		got := BuildSearchQueries(testCampaign(c.roles...))
		if len(got) != c.want {
			t.Errorf("roles=%v: %d queries, want %d", c.roles, len(got), c.want)
		}
	}
}

func TestBuildSearchQueriesShape(t *testing.T) {
	queries := BuildSearchQueries(testCampaign("CTO", "HR Manager"))
	want := `site:linkedin.com/in ("CTO") ("SaaS") India`
	if queries[0] != want {
		t.Errorf("query = %q, want %q", queries[0], want)
	}
}

func TestBuildCrawlQueriesNoDorking(t *testing.T) {
	queries := BuildCrawlQueries(testCampaign("CTO"))
	if queries[0] != "CTO SaaS India" {
		t.Errorf("crawl query = %q", queries[0])
	}
}

func TestDiscoverParsesProspect(t *testing.T) {
	search := &fakeSearch{
		configured: true,
		results: []serper.OrganicResult{
			{Title: "Jane Doe - CTO at Acme | LinkedIn", Link: "https://linkedin.com/in/janedoe"},
			{Title: "Unrelated page", Link: "https://example.com/blog"},
		},
	}
	svc, store := newTestService(testCampaign("CTO", "HR Manager"), search, &fakeCrawler{})

	res, err := svc.Discover(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(res.Queries) != 2 {
		t.Errorf("queries = %d, want 2", len(res.Queries))
	}
	if len(store.inserted) == 0 {
		t.Fatal("nothing inserted")
	}
	p := store.inserted[0]
	if p.Name != "Jane Doe" || p.JobTitle != "CTO" || p.Company != "Acme" || p.Status != domain.ProspectPending {
		t.Errorf("parsed prospect = %+v", p)
	}
}

func TestDiscoverDeduplicatesLastWriteWins(t *testing.T) {
	search := &fakeSearch{
		configured: true,
		results: []serper.OrganicResult{
			{Title: "Jane Doe - CTO at Acme | LinkedIn", Link: "https://linkedin.com/in/janedoe"},
			{Title: "Jane Doe - CTO at NewCo | LinkedIn", Link: "https://linkedin.com/in/janedoe"},
		},
	}
	svc, store := newTestService(testCampaign("CTO"), search, &fakeCrawler{})

	res, err := svc.Discover(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if res.Attempted != 2 {
		t.Errorf("attempted = %d, want 2", res.Attempted)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d rows, want 1", len(store.inserted))
	}
	if store.inserted[0].Company != "NewCo" {
		t.Errorf("company = %q, want last-seen NewCo", store.inserted[0].Company)
	}
}

func TestDiscoverValidation(t *testing.T) {
	svc, _ := newTestService(testCampaign("CTO"), &fakeSearch{configured: true}, &fakeCrawler{})

	if _, err := svc.Discover(context.Background(), ""); !errors.Is(err, ErrMissingCampaignID) {
		t.Errorf("empty id err = %v", err)
	}
	if _, err := svc.Discover(context.Background(), "ghost"); !errors.Is(err, campaign.ErrNotFound) {
		t.Errorf("unknown campaign err = %v", err)
	}

	svc, _ = newTestService(testCampaign("CTO"), &fakeSearch{configured: false}, &fakeCrawler{})
	if _, err := svc.Discover(context.Background(), "c1"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("unconfigured err = %v", err)
	}
}

func TestDiscoverUpstreamError(t *testing.T) {
	search := &fakeSearch{configured: true, err: fmt.Errorf("serper error (status 500)")}
	svc, _ := newTestService(testCampaign("CTO"), search, &fakeCrawler{})
	if _, err := svc.Discover(context.Background(), "c1"); !errors.Is(err, ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}

func TestAutodiscoverCapsPerCampaign(t *testing.T) {
	var results []serper.OrganicResult
	for i := 0; i < 40; i++ {
		results = append(results, serper.OrganicResult{
			Title: fmt.Sprintf("Person %d - CTO at Co%d | LinkedIn", i, i),
			Link:  fmt.Sprintf("https://linkedin.com/in/person-%d", i),
		})
	}
	search := &fakeSearch{configured: true, results: results}
	svc, store := newTestService(testCampaign("CTO"), search, &fakeCrawler{})

	res, err := svc.Autodiscover(context.Background(), AutodiscoverInput{})
	if err != nil {
		t.Fatalf("Autodiscover: %v", err)
	}
	if res.TotalInserted != 25 {
		t.Errorf("total inserted = %d, want capped default 25", res.TotalInserted)
	}
	if len(store.inserted) != 25 {
		t.Errorf("store rows = %d", len(store.inserted))
	}
}

func TestAutodiscoverClampsMaxPerCampaign(t *testing.T) {
	var results []serper.OrganicResult
	for i := 0; i < 80; i++ {
		results = append(results, serper.OrganicResult{
			Title: fmt.Sprintf("P%d - CTO at C%d", i, i),
			Link:  fmt.Sprintf("https://linkedin.com/in/p-%d", i),
		})
	}
	search := &fakeSearch{configured: true, results: results}
	svc, _ := newTestService(testCampaign("CTO"), search, &fakeCrawler{})

	res, err := svc.Autodiscover(context.Background(), AutodiscoverInput{MaxPerCampaign: 500})
	if err != nil {
		t.Fatalf("Autodiscover: %v", err)
	}
	if res.TotalInserted != 50 {
		t.Errorf("inserted = %d, want hard cap 50", res.TotalInserted)
	}
}

func TestAutodiscoverContinuesOnInsertError(t *testing.T) {
	campaigns := &memCampaignStore{campaigns: map[string]*domain.Campaign{
		"bad":  {ID: "bad", Status: domain.CampaignActive, IdealJobRoles: []string{"CTO"}},
		"good": {ID: "good", Status: domain.CampaignActive, IdealJobRoles: []string{"CTO"}},
	}}
	prospects := &memProspectStore{failOn: "bad"}
	search := &fakeSearch{configured: true, results: []serper.OrganicResult{
		{Title: "Jane - CTO at Acme", Link: "https://linkedin.com/in/jane"},
	}}
	svc := NewService(campaigns, prospects, search, &fakeCrawler{}, 10, 25)

	res, err := svc.Autodiscover(context.Background(), AutodiscoverInput{})
	if err != nil {
		t.Fatalf("Autodiscover: %v", err)
	}
	if len(res.Details) != 2 {
		t.Fatalf("details = %d, want both campaigns covered", len(res.Details))
	}
	if res.TotalInserted != 1 {
		t.Errorf("total inserted = %d, want 1 (good campaign only)", res.TotalInserted)
	}
}

func TestAutodiscoverSkipsInactive(t *testing.T) {
	campaigns := &memCampaignStore{campaigns: map[string]*domain.Campaign{
		"draft": {ID: "draft", Status: domain.CampaignDraft, IdealJobRoles: []string{"CTO"}},
	}}
	search := &fakeSearch{configured: true}
	svc := NewService(campaigns, &memProspectStore{}, search, &fakeCrawler{}, 10, 25)

	res, err := svc.Autodiscover(context.Background(), AutodiscoverInput{})
	if err != nil {
		t.Fatalf("Autodiscover: %v", err)
	}
	if len(res.Details) != 0 || len(search.queries) != 0 {
		t.Errorf("draft campaign was processed: %+v", res)
	}
}

func TestCrawlMapsAndDedupes(t *testing.T) {
	crawler := &fakeCrawler{items: []apify.ProfileItem{
		{Name: "Jane Doe", Title: "CTO", Company: "Acme", ProfileURL: "https://linkedin.com/in/janedoe"},
		{Name: "", Title: "Rob Roy at Beta", ProfileURL: "https://linkedin.com/in/robroy"},
		{Name: "Jane Doe", Title: "CTO", Company: "NewCo", ProfileURL: "https://linkedin.com/in/janedoe"},
		{Name: "No URL", Title: "CFO", ProfileURL: ""},
	}}
	svc, store := newTestService(testCampaign("CTO"), &fakeSearch{configured: true}, crawler)

	res, err := svc.Crawl(context.Background(), "c1", 30)
	if err != nil {
		t.Fatalf("Crawl: %v", err)
	}
	if res.Attempted != 3 {
		t.Errorf("attempted = %d, want 3 (item without URL filtered)", res.Attempted)
	}
	if len(store.inserted) != 2 {
		t.Fatalf("inserted = %d, want 2 after dedup", len(store.inserted))
	}
	if store.inserted[0].Company != "NewCo" {
		t.Errorf("dedup kept %q, want last-seen NewCo", store.inserted[0].Company)
	}
	if store.inserted[1].Name != "Rob Roy" {
		t.Errorf("name from title = %q, want Rob Roy", store.inserted[1].Name)
	}
}

func TestCrawlErrorTaxonomy(t *testing.T) {
	svc, _ := newTestService(testCampaign("CTO"), &fakeSearch{configured: true}, &fakeCrawler{missing: "APIFY_TOKEN"})
	if _, err := svc.Crawl(context.Background(), "c1", 0); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("missing credential err = %v", err)
	}

	svc, _ = newTestService(testCampaign("CTO"), &fakeSearch{configured: true}, &fakeCrawler{err: fmt.Errorf("apify run status FAILED")})
	if _, err := svc.Crawl(context.Background(), "c1", 0); !errors.Is(err, ErrUpstream) {
		t.Errorf("actor failure err = %v", err)
	}

	svc, _ = newTestService(testCampaign("CTO"), &fakeSearch{configured: true}, &fakeCrawler{})
	if _, err := svc.Crawl(context.Background(), "", 0); !errors.Is(err, ErrMissingCampaignID) {
		t.Errorf("missing id err = %v", err)
	}
	if _, err := svc.Crawl(context.Background(), "ghost", 0); !errors.Is(err, campaign.ErrNotFound) {
		t.Errorf("unknown campaign err = %v", err)
	}
}

func TestExtractRoleCompany(t *testing.T) {
	role, company := extractRoleCompany("CTO at Acme | LinkedIn")
	if role != "CTO" || company != "Acme" {
		t.Errorf("got role=%q company=%q", role, company)
	}
	role, company = extractRoleCompany("no separator here")
	if role != "" || company != "" {
		t.Errorf("expected empty split, got role=%q company=%q", role, company)
	}
}
