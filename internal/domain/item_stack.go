package domain

import "strings"

const (
	colorCodeChar   = '&'
	sectionSignChar = '§'
	colorCodes      = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"
)

// ItemStack is the host-side representation of a granted action item.
type ItemStack struct {
	Material    string
	Amount      int
	DisplayName string
	Lore        []string
	ModelData   int
	Tag         ItemID
}

// NewItemStack builds a single tagged item from its definition.
func NewItemStack(def ItemDefinition) ItemStack {
	material := strings.ToUpper(strings.TrimSpace(def.Material))
	if material == "" {
		material = DefaultMaterial
	}

	lore := make([]string, 0, len(def.Lore))
	for _, line := range def.Lore {
		lore = append(lore, TranslateColorCodes(line))
	}

	stack := ItemStack{
		Material:    material,
		Amount:      1,
		DisplayName: TranslateColorCodes(def.DisplayName),
		Lore:        lore,
		Tag:         def.ID,
	}
	if def.ModelData > 0 {
		stack.ModelData = def.ModelData
	}

	return stack
}

// TranslateColorCodes rewrites '&x' colour codes into their section-sign form.
// Ampersands not followed by a known code are kept.
func TranslateColorCodes(text string) string {
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == colorCodeChar && strings.ContainsRune(colorCodes, runes[i+1]) {
			runes[i] = sectionSignChar
			runes[i+1] = []rune(strings.ToLower(string(runes[i+1])))[0]
		}
	}
	return string(runes)
}

// StripColorCodes removes section-sign colour codes, for plain terminals.
func StripColorCodes(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == sectionSignChar && i+1 < len(runes) {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
