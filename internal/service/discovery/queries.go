package discovery

import (
	"fmt"
	"strings"

	"github.com/ignite/linkedin-outreach/internal/domain"
)

// maxQueries bounds how many queries a single discovery pass issues.
const maxQueries = 5

// defaultRoles is used when a campaign has no ideal job roles.
var defaultRoles = []string{"cto", "head of hr", "recruiter", "vp sales"}

func campaignRoles(c *domain.Campaign) []string {
	if len(c.IdealJobRoles) > 0 {
		return c.IdealJobRoles
	}
	return defaultRoles
}

// BuildSearchQueries builds Google-dorked queries that surface LinkedIn
// profiles matching the campaign's roles, industry, and region. One query
// per role, capped at maxQueries.
func BuildSearchQueries(c *domain.Campaign) []string {
	queries := make([]string, 0, maxQueries)
	for _, role := range campaignRoles(c) {
		q := strings.TrimSpace(fmt.Sprintf(`site:linkedin.com/in (%q) (%q) %s`, role, c.TargetIndustry, c.Region))
		queries = append(queries, q)
		if len(queries) == maxQueries {
			break
		}
	}
	return queries
}

// BuildCrawlQueries builds plain role+industry+region queries for the crawl
// actor, which does its own source selection and needs no dorking syntax.
func BuildCrawlQueries(c *domain.Campaign) []string {
	queries := make([]string, 0, maxQueries)
	for _, role := range campaignRoles(c) {
		q := strings.TrimSpace(strings.Join([]string{role, c.TargetIndustry, c.Region}, " "))
		queries = append(queries, strings.Join(strings.Fields(q), " "))
		if len(queries) == maxQueries {
			break
		}
	}
	return queries
}
