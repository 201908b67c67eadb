package format

import "go-storefront/models"

// CategoryOption is a category key with its translated label
type CategoryOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CategoryLabel translates a category key. Unknown keys are returned unchanged.
func CategoryLabel(key string) string {
	return models.Category(key).Label()
}

// CategoryKey is the reverse of CategoryLabel. Unknown labels are returned unchanged.
func CategoryKey(label string) string {
	for c, l := range models.CategoryLabels {
		if l == label {
			return string(c)
		}
	}
	return label
}

// TranslatedCategories pairs each key with its label, preserving order
func TranslatedCategories(keys []string) []CategoryOption {
	out := make([]CategoryOption, 0, len(keys))
	for _, k := range keys {
		out = append(out, CategoryOption{Key: k, Label: CategoryLabel(k)})
	}
	return out
}
