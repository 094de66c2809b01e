package domain

import "strings"

// Category classifies a line item by what was sold.
type Category string

const (
	CategoryCoaching   Category = "coaching"
	CategoryOutbound   Category = "outbound"
	CategoryShipping   Category = "shipping"
	CategoryRollover   Category = "rollover"
	CategorySupplement Category = "supplement" // fallback when nothing matches
)

// categoryRule pairs a category with the keywords that select it.
type categoryRule struct {
	category Category
	keywords []string
}

// classificationRules is scanned in order and the first keyword hit wins.
// An item name can contain keywords from several categories ("training
// delivery"), so the slice order carries the priority; do not reorder.
var classificationRules = []categoryRule{
	{CategoryCoaching, []string{"coaching", "program", "training"}},
	{CategoryOutbound, []string{"opportunity", "offer", "scholarship"}},
	{CategoryShipping, []string{"shipping", "delivery", "freight"}},
	{CategoryRollover, []string{"rollover", "carryover", "transfer"}},
}

// ClassifyItem maps an item name to its category via case-insensitive
// substring matching against classificationRules. Empty or missing names
// fall through to CategorySupplement.
func ClassifyItem(itemName string) Category {
	lower := strings.ToLower(itemName)
	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return CategorySupplement
}
