package application

import (
	"fmt"

	"github.com/bnema/actionitems/internal/domain"
)

const (
	cooldownMessage        = "&cYou must wait &e%.1f&c seconds before using this item again."
	effectEnabledMessage   = "&aYour %s is active for &e%d&a seconds!"
	effectWarningMessage   = "&eYour %s will wear off in 10 seconds!"
	effectCountdownMessage = "&eYour %s ends in &c%d&e..."
	effectExpiredMessage   = "&cYour %s has worn off."
)

func formatMessage(format string, args ...any) string {
	return domain.TranslateColorCodes(fmt.Sprintf(format, args...))
}

func cooldownNotice(outcome domain.CooldownOutcome) string {
	return formatMessage(cooldownMessage, outcome.RemainingSeconds())
}
