package domain

// Keys of the pricing inputs reported as missing.
const (
	FieldSupplierPrice = "supplierPrice"
	FieldBoxCBM        = "boxCBM"
	FieldQtyPerCarton  = "qtyPerCarton"
	FieldCategory      = "categoryId"
)

// RequiredInputs returns the keys of the structural inputs that are absent
// and not supplied by overrides.
func RequiredInputs(item Item, o PricingOverrides) []string {
	var missing []string
	if o.SupplierPrice == nil && !item.SupplierPrice.IsPositive() {
		missing = append(missing, FieldSupplierPrice)
	}
	if o.BoxCBM == nil && !item.BoxCBM.IsPositive() {
		missing = append(missing, FieldBoxCBM)
	}
	if o.QtyPerCarton == nil && item.QtyPerCarton <= 0 {
		missing = append(missing, FieldQtyPerCarton)
	}
	if o.MarginPercentage == nil && !item.HasCategory() {
		missing = append(missing, FieldCategory)
	}
	return missing
}
