// Package i18n renders pricing field names in the operator's language.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

var (
	supported = []language.Tag{language.English, language.Hebrew}
	matcher   = language.NewMatcher(supported)
)

var labels = map[language.Tag]map[string]string{
	language.English: {
		domain.FieldSupplierPrice: "Supplier price",
		domain.FieldBoxCBM:        "Carton volume (CBM)",
		domain.FieldQtyPerCarton:  "Quantity per carton",
		domain.FieldCategory:      "Category",
	},
	language.Hebrew: {
		domain.FieldSupplierPrice: "מחיר ספק",
		domain.FieldBoxCBM:        "נפח קרטון (CBM)",
		domain.FieldQtyPerCarton:  "כמות בקרטון",
		domain.FieldCategory:      "קטגוריה",
	},
}

// Match picks the supported language that best fits an Accept-Language header.
// English is used when nothing matches.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return language.English
	}
	return supported[idx]
}

// FieldLabels translates field keys into display names. Unknown keys are returned as is.
func FieldLabels(tag language.Tag, fields []string) []string {
	table := labels[tag]
	if table == nil {
		table = labels[language.English]
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		if label, ok := table[f]; ok {
			out[i] = label
		} else {
			out[i] = f
		}
	}
	return out
}
