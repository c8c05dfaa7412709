package discovery

import (
	"strings"

	"github.com/ignite/linkedin-outreach/internal/apify"
	"github.com/ignite/linkedin-outreach/internal/domain"
	"github.com/ignite/linkedin-outreach/internal/serper"
)

// profilePathSegment marks a search result link as a LinkedIn profile.
const profilePathSegment = "linkedin.com/in"

// extractName takes the display name from a result title, which LinkedIn
// formats as "Name - Title at Company | LinkedIn". Splits on dash, en-dash,
// and pipe.
func extractName(title string) string {
	parts := strings.FieldsFunc(title, func(r rune) bool {
		return r == '-' || r == '–' || r == '|'
	})
	if len(parts) > 0 {
		if name := strings.TrimSpace(parts[0]); name != "" {
			return name
		}
	}
	return strings.TrimSpace(title)
}

// extractRoleCompany heuristically splits "X at Y"-shaped text into a role
// and a company. The company is cut at the first pipe or dash since titles
// append " | LinkedIn" and location suffixes.
func extractRoleCompany(text string) (role, company string) {
	atIdx := strings.Index(strings.ToLower(text), " at ")
	if atIdx < 0 {
		return "", ""
	}
	role = strings.TrimSpace(text[:atIdx])
	// Titles lead with the person's name ("Jane Doe - CTO at ..."); keep
	// only the segment after the last name separator.
	if parts := strings.FieldsFunc(role, func(r rune) bool {
		return r == '-' || r == '–' || r == '|'
	}); len(parts) > 0 {
		role = strings.TrimSpace(parts[len(parts)-1])
	}
	company = text[atIdx+len(" at "):]
	if i := strings.IndexAny(company, "|"); i >= 0 {
		company = company[:i]
	}
	if i := strings.Index(company, "-"); i >= 0 {
		company = company[:i]
	}
	return role, strings.TrimSpace(company)
}

// prospectFromResult maps one organic search result to a prospect record.
// Returns false for results that are not profile links.
func prospectFromResult(campaignID string, r serper.OrganicResult, fallbackRole string) (domain.Prospect, bool) {
	if !strings.Contains(r.Link, profilePathSegment) {
		return domain.Prospect{}, false
	}

	name := extractName(r.Title)
	if name == "" {
		name = "Unknown"
	}
	role, company := extractRoleCompany(r.Title + " " + r.Snippet)
	if role == "" {
		role = fallbackRole
	}

	return domain.Prospect{
		CampaignID:  campaignID,
		Name:        name,
		JobTitle:    role,
		Company:     company,
		LinkedInURL: r.Link,
		Status:      domain.ProspectPending,
	}, true
}

// prospectFromProfileItem maps one crawl actor dataset item to a prospect.
// Returns false for items without a profile URL.
func prospectFromProfileItem(campaignID string, item apify.ProfileItem) (domain.Prospect, bool) {
	if !strings.Contains(item.ProfileURL, profilePathSegment) {
		return domain.Prospect{}, false
	}

	name := item.Name
	if name == "" {
		if i := strings.Index(item.Title, " at "); i >= 0 {
			name = strings.TrimSpace(item.Title[:i])
		}
	}
	if name == "" {
		name = "Unknown"
	}

	return domain.Prospect{
		CampaignID:  campaignID,
		Name:        name,
		JobTitle:    item.Title,
		Company:     item.Company,
		LinkedInURL: item.ProfileURL,
		Status:      domain.ProspectPending,
	}, true
}

// dedupeByURL removes duplicate profile URLs with last-write-wins semantics,
// keeping the position of the first occurrence so batch order is stable.
func dedupeByURL(prospects []domain.Prospect) []domain.Prospect {
	index := make(map[string]int, len(prospects))
	out := prospects[:0:0]
	for _, p := range prospects {
		if i, ok := index[p.LinkedInURL]; ok {
			out[i] = p
			continue
		}
		index[p.LinkedInURL] = len(out)
		out = append(out, p)
	}
	return out
}
