package payroll

import (
	"fmt"
	"strings"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/payroll"
)

// ItemFromSetting materializes one compensation setting into a line item.
// Blank descriptions fall back to "<type> payment"; a missing payment method
// defaults to bank transfer. The amount is copied as-is (zero when unset).
func ItemFromSetting(setting payroll.CompensationSetting) payroll.LineItem {
	description := ""
	if setting.Description != nil {
		description = strings.TrimSpace(*setting.Description)
	}
	if description == "" {
		description = fmt.Sprintf("%s payment", setting.PayrollType)
	}

	method := setting.Method
	if method == "" {
		method = payroll.PaymentMethodBankTransfer
	}

	return payroll.LineItem{
		SettingID:   setting.ID,
		Description: description,
		PayrollType: setting.PayrollType,
		Amount:      setting.Amount,
		Method:      method,
	}
}

// PopulateItems appends a line item for every currently-active setting the
// record does not yet carry, matched by setting id. Existing items are never
// altered or removed, so re-running over the same settings is a no-op and
// newly-activated settings grow the record append-only. Returns the number
// of items appended.
func PopulateItems(record *payroll.Record, settings []payroll.CompensationSetting) int {
	appended := 0
	for _, setting := range settings {
		if record.HasItemForSetting(setting.ID) {
			continue
		}
		record.Items = append(record.Items, ItemFromSetting(setting))
		appended++
	}
	return appended
}
