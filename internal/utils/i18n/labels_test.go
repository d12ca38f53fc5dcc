package i18n

import (
	"testing"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, language.Hebrew, Match("he-IL,he;q=0.9,en;q=0.8"))
	assert.Equal(t, language.English, Match("en-US"))
	assert.Equal(t, language.English, Match(""))
	assert.Equal(t, language.English, Match("fr-FR"))
	assert.Equal(t, language.English, Match(";;;"))
}

func TestFieldLabels(t *testing.T) {
	fields := []string{domain.FieldSupplierPrice, "unknownField"}

	assert.Equal(t, []string{"Supplier price", "unknownField"}, FieldLabels(language.English, fields))
	assert.Equal(t, []string{"מחיר ספק", "unknownField"}, FieldLabels(language.Hebrew, fields))
	assert.Equal(t, []string{"Supplier price", "unknownField"}, FieldLabels(language.French, fields))
}
