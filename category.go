package docsmcp

import "strings"

// Category is a topical bucket for a documentation path.
type Category string

// Categories a path can be assigned to.
const (
	CategoryTutorial   Category = "tutorial"
	CategoryAdvanced   Category = "advanced"
	CategoryDeployment Category = "deployment"
	CategoryHowTo      Category = "how-to"
	CategoryReference  Category = "reference"
	CategoryOther      Category = "other"
)

// Categories returns every category in rule order, with CategoryOther last.
func Categories() []Category {
	return []Category{
		CategoryTutorial,
		CategoryAdvanced,
		CategoryDeployment,
		CategoryHowTo,
		CategoryReference,
		CategoryOther,
	}
}

// categoryRule assigns a category when match reports true for a path.
type categoryRule struct {
	category Category
	match    func(path string) bool
}

// categoryRules are evaluated top to bottom; the first match wins.
var categoryRules = []categoryRule{
	{CategoryTutorial, sectionMatcher("tutorial")},
	{CategoryAdvanced, sectionMatcher("advanced")},
	{CategoryDeployment, sectionMatcher("deployment")},
	{CategoryHowTo, sectionMatcher("how-to")},
	{CategoryReference, sectionMatcher("reference")},
}

// sectionMatcher matches paths that are the section itself or that contain
// the section as a directory, including translated trees like "es/tutorial/".
func sectionMatcher(section string) func(string) bool {
	dir := section + "/"
	return func(path string) bool {
		return path == section || strings.Contains(path, dir)
	}
}

// Categorize assigns exactly one category to a normalized path.
// The result depends only on the path string.
func Categorize(path string) Category {
	for _, rule := range categoryRules {
		if rule.match(path) {
			return rule.category
		}
	}
	return CategoryOther
}
