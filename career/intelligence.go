package career

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/resumelens/backend/models"
)

// rolePatterns maps role archetypes to the title phrasings that signal them.
// Patterns run against lowercased resume text.
var rolePatterns = []struct {
	Role     string
	Patterns []*regexp.Regexp
}{
	{"backend_engineer", compilePatterns(
		`\b(?:backend|back-end|server-side)\s*(?:developer|engineer|programmer)\b`,
		`\bapi\s*developer\b`,
		`\b(?:python|java|node\.?js|php|golang|rust)\s*developer\b`,
		`\bdatabase\s*(?:developer|administrator|engineer)\b`,
	)},
	{"frontend_engineer", compilePatterns(
		`\b(?:frontend|front-end|ui|user\s*interface)\s*(?:developer|engineer|programmer)\b`,
		`\b(?:react|angular|vue|javascript|typescript)\s*developer\b`,
		`\bweb\s*developer\b`,
		`\b(?:html|css|javascript)\s*developer\b`,
	)},
	{"fullstack_engineer", compilePatterns(
		`\b(?:fullstack|full-stack|full\s*stack)\s*(?:developer|engineer|programmer)\b`,
		`\bfull\s*stack\s*developer\b`,
	)},
	{"devops_engineer", compilePatterns(
		`\b(?:devops|dev-ops|site\s*reliability|sre)\s*(?:engineer|specialist|administrator)\b`,
		`\b(?:infrastructure|deployment|automation)\s*engineer\b`,
		`\b(?:docker|kubernetes|aws|azure|gcp|cloud)\s*engineer\b`,
		`\bplatform\s*engineer\b`,
		`\bsystem\s*administrator\b`,
	)},
	{"data_analyst", compilePatterns(
		`\bdata\s*(?:analyst|scientist|engineer)\b`,
		`\bbusiness\s*(?:analyst|intelligence)\b`,
		`\b(?:sql|database|analytics)\s*(?:analyst|specialist)\b`,
		`\bmachine\s*learning\s*engineer\b`,
	)},
	{"product_manager", compilePatterns(
		`\bproduct\s*(?:manager|owner|lead)\b`,
		`\bproject\s*manager\b`,
		`\bprogram\s*manager\b`,
	)},
	{"ux_designer", compilePatterns(
		`\b(?:ux|ui|user\s*experience|user\s*interface)\s*(?:designer|researcher)\b`,
		`\bdesign\s*(?:lead|manager|director)\b`,
		`\bproduct\s*designer\b`,
	)},
}

var industryIndicators = []struct {
	Industry string
	Keywords []string
}{
	{"tech", []string{"startup", "saas", "software company", "tech company", "technology", "fintech", "edtech"}},
	{"finance", []string{"bank", "financial services", "investment", "trading", "fintech", "insurance"}},
	{"healthcare", []string{"hospital", "healthcare", "medical", "pharma", "biotech", "health tech"}},
	{"ecommerce", []string{"e-commerce", "ecommerce", "retail", "marketplace", "shopping"}},
	{"consulting", []string{"consulting", "advisory", "professional services"}},
	{"enterprise", []string{"enterprise", "corporation", "fortune 500", "large company"}},
}

var experienceLevelPatterns = []struct {
	Level    string
	Patterns []*regexp.Regexp
}{
	{"senior", compilePatterns(`\bsenior\b`, `\blead\b`, `\bprincipal\b`, `\bstaff\b`, `\barchitect\b`, `\bmanager\b`, `\bdirector\b`)},
	{"mid", compilePatterns(`\b(?:mid|middle)\s*level\b`, `\b\d+\+?\s*years?\s*(?:of\s*)?experience\b`)},
	{"junior", compilePatterns(`\bjunior\b`, `\bentry\s*level\b`, `\bintern\b`, `\bassociate\b`, `\bgraduate\b`)},
}

// pathRoles maps catalog path IDs to their role archetype
var pathRoles = map[string]string{
	"swe_backend":     "backend_engineer",
	"swe_frontend":    "frontend_engineer",
	"swe_fullstack":   "fullstack_engineer",
	"devops_engineer": "devops_engineer",
	"data_analyst":    "data_analyst",
	"product_manager": "product_manager",
	"ux_designer":     "ux_designer",
}

// relatedPathRoles lists role archetypes whose experience transfers to a path
var relatedPathRoles = map[string][]string{
	"swe_backend":     {"devops_engineer", "fullstack_engineer"},
	"swe_frontend":    {"fullstack_engineer", "ux_designer"},
	"swe_fullstack":   {"backend_engineer", "frontend_engineer"},
	"devops_engineer": {"backend_engineer"},
	"data_analyst":    {"backend_engineer"},
	"product_manager": {"ux_designer"},
	"ux_designer":     {"frontend_engineer", "product_manager"},
}

var techPaths = map[string]bool{
	"swe_backend":     true,
	"swe_frontend":    true,
	"swe_fullstack":   true,
	"devops_engineer": true,
	"data_analyst":    true,
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// AnalyzeResumeContext reads role, industry and seniority signals out of free
// resume text. Confidence grows with each signal class that fires.
func (s *Service) AnalyzeResumeContext(resumeText string) models.ResumeContext {
	lower := strings.ToLower(resumeText)

	roles := []string{}
	keywords := []string{}
	for _, rp := range rolePatterns {
		matched := false
		for _, re := range rp.Patterns {
			found := re.FindAllString(lower, -1)
			if len(found) == 0 {
				continue
			}
			matched = true
			keywords = append(keywords, found...)
		}
		if matched {
			roles = append(roles, rp.Role)
		}
	}

	industries := []string{}
	for _, ind := range industryIndicators {
		for _, kw := range ind.Keywords {
			if strings.Contains(lower, kw) {
				industries = append(industries, ind.Industry)
				break
			}
		}
	}

	level := "mid"
	for _, lp := range experienceLevelPatterns {
		for _, re := range lp.Patterns {
			if re.MatchString(lower) {
				level = lp.Level
				break
			}
		}
		if level != "mid" {
			break
		}
	}

	factors := 0
	if len(roles) > 0 {
		factors++
	}
	if len(industries) > 0 {
		factors++
	}
	if len(keywords) > 0 {
		factors++
	}
	if level != "mid" {
		factors++
	}

	return models.ResumeContext{
		DetectedRoles:      roles,
		IndustryIndicators: industries,
		ExperienceLevel:    level,
		RoleKeywords:       keywords,
		ConfidenceScore:    float64(factors) / 4,
	}
}

// RecommendIntelligent combines skill coverage with resume-context relevance.
// Paths scoring 25 or below are dropped; the rest are ranked by relevance,
// then skill match, and capped at the top four.
func (s *Service) RecommendIntelligent(req models.IntelligentRecommendationRequest) []models.IntelligentRecommendation {
	context := s.AnalyzeResumeContext(req.ResumeText)

	recs := []models.IntelligentRecommendation{}
	for _, rec := range s.Recommend(req.CurrentSkillIDs) {
		score, why := relevanceScore(rec.CareerPath.ID, context, rec.OverallMatchPct)
		if score <= 25 {
			continue
		}
		recs = append(recs, models.IntelligentRecommendation{
			CareerPath:      rec.CareerPath,
			StagesMatch:     rec.StagesMatch,
			OverallMatchPct: rec.OverallMatchPct,
			RelevanceScore:  score,
			ConfidenceLevel: confidenceLevel(score),
			WhyRecommended:  why,
			ResumeAnalysis:  context,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].RelevanceScore != recs[j].RelevanceScore {
			return recs[i].RelevanceScore > recs[j].RelevanceScore
		}
		return recs[i].OverallMatchPct > recs[j].OverallMatchPct
	})

	if len(recs) > 4 {
		recs = recs[:4]
	}
	return recs
}

// relevanceScore weighs direct and related role matches, skill coverage,
// industry background and seniority into a 0-100 score with an explanation
func relevanceScore(pathID string, ctx models.ResumeContext, skillMatchPct float64) (float64, string) {
	score := 0.0
	reasons := []string{}

	if role := pathRoles[pathID]; role != "" && slices.Contains(ctx.DetectedRoles, role) {
		score += 40
		reasons = append(reasons, "Direct role match found in resume")
	}

	for _, related := range relatedPathRoles[pathID] {
		if slices.Contains(ctx.DetectedRoles, related) {
			score += 20
			reasons = append(reasons, fmt.Sprintf("Related role experience (%s)", titleizeRole(related)))
			break
		}
	}

	score += skillMatchPct * 0.3

	if techPaths[pathID] && slices.Contains(ctx.IndustryIndicators, "tech") {
		score += 10
		reasons = append(reasons, "Tech industry background")
	}

	if ctx.ExperienceLevel == "senior" || ctx.ExperienceLevel == "mid" {
		score += 5
		reasons = append(reasons, fmt.Sprintf("Appropriate for %s level", ctx.ExperienceLevel))
	}

	if score > 100 {
		score = 100
	}

	why := "Based on general skill analysis"
	if len(reasons) > 0 {
		why = strings.Join(reasons, "; ")
	}
	return score, why
}

func confidenceLevel(score float64) string {
	switch {
	case score >= 80:
		return "Very High"
	case score >= 60:
		return "High"
	case score >= 40:
		return "Medium"
	case score >= 20:
		return "Low"
	default:
		return "Very Low"
	}
}

func titleizeRole(role string) string {
	words := strings.Split(role, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
