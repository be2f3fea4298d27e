package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LoopData holds the live values annotated on the thermal loop
// schematic: enclosure → return air → coil → supply air → enclosure,
// with ambient coupling above and chilled water below.
type LoopData struct {
	EnclosureTempC    float64
	SupplyTempC       float64 // air leaving the coil
	ReturnTempC       float64
	AmbientTempC      float64
	ChilledWaterTempC float64

	AirflowCFM float64
	CoolantLPM float64
	HeatLoadW  float64
	UAValue    float64

	// Optional plant label shown inside the coil box
	CoolingTypeLabel string
}

const (
	enclInterior = 28
	coilInterior = 19
	airPathLen   = 30
)

// DrawASCIILoopSchematic renders the cooling loop as box-drawing ASCII.
func DrawASCIILoopSchematic(d LoopData) string {
	var sb strings.Builder

	top := func(w int) string { return "┌" + strings.Repeat("─", w) + "┐" }
	bottom := func(w int) string { return "└" + strings.Repeat("─", w) + "┘" }
	side := func(w int, s string) string { return "│" + center(s, w) + "│" }

	arrowRight := " " + strings.Repeat("─", airPathLen) + "► "
	arrowLeft := " ◄" + strings.Repeat("─", airPathLen) + " "
	airGap := strings.Repeat(" ", airPathLen+3)

	enclCenter := 2 + 1 + enclInterior/2
	coilStart := 2 + enclInterior + 2 + airPathLen + 3
	coilCenter := coilStart + 1 + coilInterior/2

	coilLabel := d.CoolingTypeLabel
	if coilLabel == "" {
		coilLabel = "Air Coil"
	}

	sb.WriteString("\n")
	sb.WriteString("  THERMAL LOOP\n")
	sb.WriteString("  ────────────\n\n")

	// Ambient coupling above the enclosure
	amb := fmt.Sprintf("Ambient  %.1f °C", d.AmbientTempC)
	sb.WriteString(indentTo(enclCenter-utf8.RuneCountInString(amb)/2) + amb + "\n")
	sb.WriteString(indentTo(enclCenter) + "│" + fmt.Sprintf("  UA = %.1f W/K", d.UAValue) + "\n")
	sb.WriteString(indentTo(enclCenter) + "▼\n")

	// The two boxes joined by the air paths
	sb.WriteString("  " + top(enclInterior) +
		fmt.Sprintf("      Return air  %.1f °C", d.ReturnTempC) + "\n")
	sb.WriteString("  " + side(enclInterior, "ENCLOSURE") + arrowRight + top(coilInterior) + "\n")
	sb.WriteString("  " + side(enclInterior, "") + airGap + side(coilInterior, "COIL / HX") + "\n")
	sb.WriteString("  " + side(enclInterior, fmt.Sprintf("T = %.1f °C", d.EnclosureTempC)) +
		airGap + side(coilInterior, coilLabel) + "\n")
	sb.WriteString("  " + side(enclInterior, fmt.Sprintf("Q_load = %.0f W", d.HeatLoadW)) +
		airGap + side(coilInterior, fmt.Sprintf("T_out = %.1f °C", d.SupplyTempC)) + "\n")
	sb.WriteString("  " + side(enclInterior, "") + arrowLeft + side(coilInterior, "") + "\n")
	sb.WriteString("  " + bottom(enclInterior) +
		fmt.Sprintf("      Supply  %.1f °C  ·  %.0f CFM", d.SupplyTempC, d.AirflowCFM) + "\n")

	// Chilled water feed below the coil
	sb.WriteString(indentTo(coilCenter) + "▲\n")
	coolant := fmt.Sprintf("Coolant  %.0f °C  ·  %.2f L/min", d.ChilledWaterTempC, d.CoolantLPM)
	sb.WriteString(indentTo(coilCenter-utf8.RuneCountInString(coolant)/2) + coolant + "\n")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ──►  = Air path (return above, supply below)\n")
	sb.WriteString("  ▼/▲  = External couplings (ambient, chilled water)\n")

	return sb.String()
}

// DrawSummaryBox frames a titled result block in double-line borders.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func indentTo(col int) string {
	if col < 0 {
		col = 0
	}
	return strings.Repeat(" ", col)
}
