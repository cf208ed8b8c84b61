package tracker

import "strings"

// Category names used across the aggregates. Uncategorized is the fallback
// for domains no keyword matches.
const (
	CategoryEntertainment = "Entertainment"
	CategorySocialMedia   = "Social Media"
	CategoryDevelopment   = "Development"
	CategoryProductivity  = "Productivity"
	CategoryShopping      = "Shopping"
	CategoryNews          = "News"
	CategoryEducation     = "Education"
	CategoryUncategorized = "Uncategorized"
)

// categoryRule maps substring keywords to a category. Rules are held in a
// slice so iteration order is fixed: the first matching rule wins.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{CategoryEntertainment, []string{"youtube", "netflix", "twitch", "hulu", "spotify", "disney"}},
	{CategorySocialMedia, []string{"facebook", "twitter", "instagram", "reddit", "tiktok", "linkedin"}},
	{CategoryDevelopment, []string{"github", "gitlab", "stackoverflow", "localhost"}},
	{CategoryProductivity, []string{"notion", "trello", "slack", "calendar", "docs.google"}},
	{CategoryShopping, []string{"amazon", "ebay", "etsy", "aliexpress"}},
	{CategoryNews, []string{"bbc", "cnn", "nytimes", "theguardian", "news."}},
	{CategoryEducation, []string{"coursera", "udemy", "khanacademy", "wikipedia"}},
}

// Categorize classifies a domain by substring match against the keyword
// table. The result is deterministic for a given input.
func Categorize(domain string) string {
	d := NormalizeDomain(domain)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(d, kw) {
				return rule.category
			}
		}
	}
	return CategoryUncategorized
}

// Categories returns the known category names in table order, ending with
// Uncategorized.
func Categories() []string {
	out := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		out = append(out, rule.category)
	}
	return append(out, CategoryUncategorized)
}
