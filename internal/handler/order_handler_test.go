package handler_test

import (
	"testing"

	"oms/internal/handler"

	"github.com/stretchr/testify/assert"
)

func ediLine(sku string, quantity int64) handler.EDIOrderLineRequest {
	return handler.EDIOrderLineRequest{SKU: sku, Quantity: &quantity}
}

func TestEDIOrderRequest_Validation(t *testing.T) {
	v := handler.NewRequestValidator()

	valid := handler.EDIOrderRequest{
		OrderNumber:           "PO-100",
		RetailerEDIIdentifier: "WALMART001",
		OrderLines:            []handler.EDIOrderLineRequest{ediLine("WIDGET-001", 2)},
	}
	assert.NoError(t, v.Validate(&valid))

	//明示的なquantity: 0は通る
	zeroQty := valid
	zeroQty.OrderLines = []handler.EDIOrderLineRequest{ediLine("WIDGET-001", 0)}
	assert.NoError(t, v.Validate(&zeroQty))

	missingQty := valid
	missingQty.OrderLines = []handler.EDIOrderLineRequest{{SKU: "WIDGET-001"}}
	assert.Error(t, v.Validate(&missingQty))

	missingSKU := valid
	missingSKU.OrderLines = []handler.EDIOrderLineRequest{ediLine("", 2)}
	assert.Error(t, v.Validate(&missingSKU))

	noLines := valid
	noLines.OrderLines = nil
	assert.Error(t, v.Validate(&noLines))

	noRetailer := valid
	noRetailer.RetailerEDIIdentifier = ""
	assert.Error(t, v.Validate(&noRetailer))
}
