package items

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderCatalog(defs []domain.ItemDefinition, s styles) string {
	lines := []string{
		s.title.Render("Action Items"),
		s.header.Render(fmt.Sprintf("items: %d", len(defs))),
	}

	if len(defs) == 0 {
		lines = append(lines, s.empty.Render("No item definitions configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, def := range defs {
		lines = append(lines, s.section.Render(renderDefinition(def, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDefinition(def domain.ItemDefinition, s styles) string {
	parts := []string{
		s.item.Render(itemTitle(def)),
		s.detail.Render(fmt.Sprintf("material: %s", material(def))),
		s.detail.Render(fmt.Sprintf("cooldown: %s", cooldownLabel(def.CooldownSeconds))),
		s.detail.Render(fmt.Sprintf("consume on use: %t", def.ConsumeOnUse)),
	}

	if len(def.Actions) == 0 {
		parts = append(parts, s.empty.Render("actions: none"))
	} else {
		parts = append(parts, s.key.Render("actions:"))
		for i, action := range def.Actions {
			parts = append(parts, actionLine(i, action, s))
		}
	}

	if def.TimedEffect != nil {
		parts = append(parts, s.effect.Render(effectLine(*def.TimedEffect)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func itemTitle(def domain.ItemDefinition) string {
	name := strings.TrimSpace(domain.StripColorCodes(domain.TranslateColorCodes(def.DisplayName)))
	if name == "" {
		return string(def.ID)
	}
	return fmt.Sprintf("%s (%s)", name, def.ID)
}

func material(def domain.ItemDefinition) string {
	if strings.TrimSpace(def.Material) == "" {
		return domain.DefaultMaterial
	}
	return strings.ToUpper(def.Material)
}

func cooldownLabel(seconds int) string {
	if seconds <= 0 {
		return "none"
	}
	return (time.Duration(seconds) * time.Second).String()
}

func actionLine(index int, action domain.Action, s styles) string {
	line := fmt.Sprintf("  %d. %s", index+1, action.Text)
	if action.DelayTicks <= 0 {
		return s.detail.Render(line)
	}

	delay := fmt.Sprintf("+%d ticks", action.DelayTicks)
	if action.DelayWhenPrefix != "" {
		delay += fmt.Sprintf(" if %q", action.DelayWhenPrefix)
	}
	return s.detail.Render(line) + " " + s.delayed.Render("["+delay+"]")
}

func effectLine(effect domain.TimedEffect) string {
	schedule := effect.Schedule()
	steps := []string{"enable@0s"}
	if schedule.Warning > 0 {
		steps = append(steps, "warn@"+ticksLabel(schedule.Warning))
	}
	if schedule.CountdownSteps > 0 {
		steps = append(steps, fmt.Sprintf("countdown@%s x%d", ticksLabel(schedule.CountdownStart), schedule.CountdownSteps))
	}
	if schedule.Expiry > 0 {
		steps = append(steps, "expire@"+ticksLabel(schedule.Expiry))
	}

	return fmt.Sprintf("timed effect: %s %ds (%s)", effect.Label(), effect.DurationSeconds, strings.Join(steps, ", "))
}

func ticksLabel(t domain.Ticks) string {
	return t.Duration().String()
}

// RenderStack describes a granted item stack.
func RenderStack(stack domain.ItemStack) string {
	s := newStyles()
	parts := []string{
		s.item.Render(fmt.Sprintf("%dx %s", stack.Amount, stack.Material)) + " " + Colored(stack.DisplayName),
	}
	for _, line := range stack.Lore {
		parts = append(parts, "  "+Colored(line))
	}
	if stack.ModelData > 0 {
		parts = append(parts, s.detail.Render(fmt.Sprintf("  model data: %d", stack.ModelData)))
	}
	parts = append(parts, s.header.Render(fmt.Sprintf("  tag: %s", stack.Tag)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderHistory lists journal records, newest first as given.
func RenderHistory(records []domain.ActivationRecord) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Activation History"),
		s.header.Render(fmt.Sprintf("records: %d", len(records))),
	}
	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No activations recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, historyLine(record, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func historyLine(record domain.ActivationRecord, s styles) string {
	name := record.ActorName
	if name == "" {
		name = string(record.ActorID)
	}

	line := fmt.Sprintf("%s %s used %s: ", record.At.UTC().Format(time.RFC3339), name, record.ItemID)
	switch record.Outcome {
	case domain.OutcomeActivated:
		line += s.activated.Render(string(record.Outcome))
	case domain.OutcomeOnCooldown:
		line += s.blocked.Render(fmt.Sprintf("%s (%.1fs left)", record.Outcome, domain.CooldownOutcome{Remaining: record.Remaining}.RemainingSeconds()))
	default:
		line += s.aborted.Render(string(record.Outcome))
	}
	if record.Detail != "" {
		line += " " + s.header.Render(record.Detail)
	}
	return line
}
